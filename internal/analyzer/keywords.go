package analyzer

import (
	"strings"

	"resumeapi/internal/nlp"
)

// maxResumeKeywords caps the resume-side keyword sample. The cap is a lossy
// first-N truncation of the deduplicated tokens, not a ranked top-N.
const maxResumeKeywords = 20

// KeywordExtractor derives keyword sets from resume and job description
// text using the shared NLP model.
type KeywordExtractor struct {
	model *nlp.Model
}

// NewKeywordExtractor creates a KeywordExtractor bound to the process-wide
// NLP model.
func NewKeywordExtractor(m *nlp.Model) *KeywordExtractor {
	return &KeywordExtractor{model: m}
}

// JobKeywords extracts a deduplicated, lowercase keyword set from a job
// description by merging three sources: fixed technical-term vocabularies,
// named entities, and salient nouns. The sources are merged without
// weighting; callers cannot tell which source produced a term.
func (e *KeywordExtractor) JobKeywords(jobText string) ([]string, error) {
	if jobText == "" {
		return nil, nil
	}
	lower := strings.ToLower(jobText)

	var keywords []string
	for _, p := range techPatterns {
		keywords = append(keywords, p.FindAllString(lower, -1)...)
	}

	ann, err := e.model.Annotate(lower)
	if err != nil {
		return nil, err
	}
	for _, ent := range ann.Entities {
		if _, ok := entityLabels[ent.Label]; ok {
			keywords = append(keywords, ent.Text)
		}
	}
	for _, tok := range ann.Tokens {
		if isNoun(tok.Tag) && len(tok.Text) > 2 && nlp.IsAlpha(tok.Text) && !nlp.IsStopword(tok.Text) {
			keywords = append(keywords, tok.Text)
		}
	}

	return dedupe(keywords, 0), nil
}

// ResumeKeywords samples up to 20 deduplicated, lowercase alphabetic tokens
// from the resume text, excluding stopwords and short tokens.
func (e *KeywordExtractor) ResumeKeywords(resumeText string) ([]string, error) {
	tokens, err := e.model.Tokenize(resumeText)
	if err != nil {
		return nil, err
	}
	var keywords []string
	for _, tok := range tokens {
		if nlp.IsAlpha(tok.Text) && !nlp.IsStopword(tok.Text) && len(tok.Text) > 2 {
			keywords = append(keywords, strings.ToLower(tok.Text))
		}
	}
	return dedupe(keywords, maxResumeKeywords), nil
}

// MatchKeywords splits jobKeywords into those contained in the lowercased
// resume text and those absent from it. Containment is substring-based, not
// token-boundary based: a short keyword can match inside a longer word.
func MatchKeywords(jobKeywords []string, resumeText string) (matched, missing []string) {
	lower := strings.ToLower(resumeText)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

// isNoun reports whether a Penn Treebank tag marks a noun (NN, NNS, NNP,
// NNPS).
func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// dedupe removes duplicates keeping first-occurrence order; a positive max
// truncates the result.
func dedupe(in []string, max int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
