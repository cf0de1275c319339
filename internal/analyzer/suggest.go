package analyzer

import (
	"strings"

	"resumeapi/internal/model"
)

// SuggestionEngine applies an ordered set of independent rules over the
// analysis signals. Rules are never mutually exclusive and each appends at
// most one suggestion; the result preserves evaluation order.
type SuggestionEngine struct{}

// NewSuggestionEngine creates a SuggestionEngine.
func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{}
}

// Suggest evaluates the rules in fixed order. An empty result is valid: the
// document is fully compliant.
func (s *SuggestionEngine) Suggest(resumeText string, sections model.SectionFlags, jobKeywords []string) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0, 6)
	lower := strings.ToLower(resumeText)

	if WordCount(resumeText) > 800 {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionFormat,
			Priority:    model.PriorityHigh,
			Title:       "Resume Length",
			Description: "Your resume is too long. Aim for 1-2 pages maximum.",
			Suggestion:  "Remove outdated experiences and focus on recent, relevant accomplishments.",
		})
	}

	if !sections.Summary {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionContent,
			Priority:    model.PriorityMedium,
			Title:       "Professional Summary",
			Description: "Add a professional summary at the top of your resume.",
			Suggestion:  "Include 2-3 sentences highlighting your key qualifications and career goals.",
		})
	}

	if !sections.Projects && strings.Contains(lower, "developer") {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionContent,
			Priority:    model.PriorityMedium,
			Title:       "Projects Section",
			Description: "Consider adding a projects section to showcase your work.",
			Suggestion:  "Include 2-3 relevant projects with brief descriptions and technologies used.",
		})
	}

	if len(jobKeywords) > 0 {
		head := jobKeywords
		if len(head) > 10 {
			head = head[:10]
		}
		_, missing := MatchKeywords(head, resumeText)
		if len(missing) > 0 {
			if len(missing) > 5 {
				missing = missing[:5]
			}
			suggestions = append(suggestions, model.Suggestion{
				Type:        model.SuggestionKeywords,
				Priority:    model.PriorityHigh,
				Title:       "Missing Keywords",
				Description: "Your resume is missing key terms from the job description.",
				Suggestion:  "Consider incorporating: " + strings.Join(missing, ", "),
			})
		}
	}

	if emailPattern.FindString(resumeText) == "" {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionContact,
			Priority:    model.PriorityHigh,
			Title:       "Email Address",
			Description: "No email address found.",
			Suggestion:  "Add a professional email address to your contact information.",
		})
	}

	if extractPhone(resumeText) == nil {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionContact,
			Priority:    model.PriorityMedium,
			Title:       "Phone Number",
			Description: "No phone number found.",
			Suggestion:  "Include a phone number in your contact information.",
		})
	}

	return suggestions
}
