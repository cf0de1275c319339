package analyzer

import (
	"strings"

	"resumeapi/internal/model"
)

// ScoringEngine combines section flags, word count, and keyword overlap
// into a capped 0-100 score plus feedback strings.
type ScoringEngine struct{}

// NewScoringEngine creates a ScoringEngine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score applies the additive rubric and clamps the result into
// [0, MaxScore]. Missing-section feedback is appended regardless of point
// contribution. A 900-word resume intentionally scores higher than a
// 150-word one even though both are flagged; that asymmetry is the rubric's
// defined behavior.
func (s *ScoringEngine) Score(resumeText string, sections model.SectionFlags, jobKeywords []string) model.ScoreResult {
	score := 0
	feedback := make([]string, 0, 4)

	// Section completeness: contact_info and experience weigh 20 each,
	// education and skills 10 each.
	if sections.ContactInfo {
		score += 20
	} else {
		feedback = append(feedback, "Add contact information (email, phone number)")
	}
	if sections.Experience {
		score += 20
	} else {
		feedback = append(feedback, "Include work experience section")
	}
	if sections.Education {
		score += 10
	} else {
		feedback = append(feedback, "Add education section")
	}
	if sections.Skills {
		score += 10
	} else {
		feedback = append(feedback, "Include a skills section")
	}

	// Content length.
	switch wc := WordCount(resumeText); {
	case wc < 200:
		feedback = append(feedback, "Resume is too brief. Add more details about your experience")
		score += 5
	case wc > 800:
		feedback = append(feedback, "Resume is too lengthy. Consider condensing to 1-2 pages")
		score += 20
	default:
		score += 30
	}

	// Keyword overlap, only when a job description was supplied.
	if len(jobKeywords) > 0 {
		matched, _ := MatchKeywords(jobKeywords, resumeText)
		keywordScore := len(matched) * 3
		if keywordScore > 30 {
			keywordScore = 30
		}
		score += keywordScore

		if float64(len(matched)) < float64(len(jobKeywords))*0.3 {
			feedback = append(feedback, "Include more relevant keywords from the job description")
		}
	} else {
		score += 15
	}

	if score > model.MaxScore {
		score = model.MaxScore
	}
	if score < 0 {
		score = 0
	}

	return model.ScoreResult{
		Score:    score,
		MaxScore: model.MaxScore,
		Feedback: feedback,
	}
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
