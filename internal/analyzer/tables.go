package analyzer

import "regexp"

// Classification is table-driven: the extractors and detectors below are
// pure functions over (text, table). Extending a vocabulary means editing a
// table entry, not control flow.

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried in priority order; the first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}\s*\d{3}\s*\d{3}\s*\d{4}`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9-]+`)
)

// sectionPatterns holds the synonym set for each of the six keyword-detected
// resume sections. contact_info is not here: it derives from contact
// extraction.
var sectionPatterns = map[string]*regexp.Regexp{
	"summary":        regexp.MustCompile(`(?i)\b(summary|objective|profile)\b`),
	"experience":     regexp.MustCompile(`(?i)\b(experience|employment|work history)\b`),
	"education":      regexp.MustCompile(`(?i)\b(education|degree|university|college)\b`),
	"skills":         regexp.MustCompile(`(?i)\b(skills|competencies|technologies)\b`),
	"projects":       regexp.MustCompile(`(?i)\b(projects|portfolio)\b`),
	"certifications": regexp.MustCompile(`(?i)\b(certifications?|licenses?)\b`),
}

// techPatterns are the fixed-vocabulary term groups matched against
// lowercased job description text: languages/platforms, methodology terms,
// tooling terms.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(python|java|javascript|react|node\.?js|sql|aws|docker|kubernetes)\b`),
	regexp.MustCompile(`\b(machine learning|ai|data science|analytics|agile|scrum)\b`),
	regexp.MustCompile(`\b(git|github|ci/cd|devops|api|rest|microservices)\b`),
}

// entityLabels is the set of named-entity labels treated as
// organization/product/skill-like terms.
var entityLabels = map[string]struct{}{
	"ORG":     {},
	"PRODUCT": {},
	"GPE":     {},
}
