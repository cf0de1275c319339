package model

import (
	"encoding/json"
	"time"
)

// Suggestion categories and priorities form closed sets; handlers and the
// suggestion engine only ever emit these values.
const (
	SuggestionFormat   = "format"
	SuggestionContent  = "content"
	SuggestionKeywords = "keywords"
	SuggestionContact  = "contact"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MaxScore is the fixed ceiling of the ATS score rubric.
const MaxScore = 100

// ContactInfo holds validated contact matches pulled from resume text.
// A nil field means the corresponding pattern produced no match; partial or
// malformed values are never stored.
type ContactInfo struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
}

// SectionFlags maps the seven fixed resume section categories to presence
// booleans. The key set is closed; ContactInfo drives the contact_info flag.
type SectionFlags struct {
	ContactInfo    bool `json:"contact_info"`
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Projects       bool `json:"projects"`
	Certifications bool `json:"certifications"`
}

// ScoreResult is the output of the scoring rubric. Score is always clamped
// into [0, MaxScore] even though the additive rubric can exceed it.
type ScoreResult struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Feedback []string `json:"feedback"`
}

// Suggestion is a single prioritized improvement recommendation.
type Suggestion struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// FileInfo describes the analyzed upload.
type FileInfo struct {
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
}

// ATSScore wraps a ScoreResult with its derived percentage for the report.
type ATSScore struct {
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Feedback   []string `json:"feedback"`
}

// KeywordReport carries the resume/job keyword sets and their overlap.
// MissingKeywords is capped to the first 10; MatchPercentage is 0 when no
// job keywords were supplied.
type KeywordReport struct {
	ResumeKeywords  []string `json:"resume_keywords"`
	JobKeywords     []string `json:"job_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchPercentage float64  `json:"match_percentage"`
}

// AnalysisReport is the full per-document result. It is assembled once by
// the orchestrator and never mutated afterwards. FileIndex is set only on
// bulk responses.
type AnalysisReport struct {
	AnalysisDate      time.Time     `json:"analysis_date"`
	FileInfo          FileInfo      `json:"file_info"`
	ContactInfo       ContactInfo   `json:"contact_info"`
	SectionsDetected  SectionFlags  `json:"sections_detected"`
	ATSScore          ATSScore      `json:"ats_score"`
	Keywords          KeywordReport `json:"keywords"`
	Suggestions       []Suggestion  `json:"suggestions"`
	WordCount         int           `json:"word_count"`
	HasJobDescription bool          `json:"has_job_description"`
	FileIndex         *int          `json:"file_index,omitempty"`
}

// BulkError is the per-item failure record in a bulk response. FileIndex is
// the zero-based position of the document in the input sequence.
type BulkError struct {
	FileIndex int    `json:"file_index"`
	Filename  string `json:"filename"`
	Error     string `json:"error"`
}

// BulkItem is one entry of a bulk result: exactly one of Report or Err is
// set.
type BulkItem struct {
	Report *AnalysisReport
	Err    *BulkError
}

// MarshalJSON flattens the item into either the report or the error record.
func (b BulkItem) MarshalJSON() ([]byte, error) {
	if b.Err != nil {
		return json.Marshal(b.Err)
	}
	return json.Marshal(b.Report)
}
