// Package analyzer implements the resume analysis core: contact extraction,
// section detection, keyword extraction, scoring, and suggestion
// generation. All components are deterministic given their pattern tables
// and safe for concurrent use.
package analyzer

import (
	"regexp"

	"resumeapi/internal/model"
)

// ContactExtractor pulls email, phone, and LinkedIn profile identifiers from
// raw text. Absence of a match is a valid result, not an error.
type ContactExtractor struct{}

// NewContactExtractor creates a ContactExtractor.
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// Extract returns the first valid match for each contact field, or nil
// fields where nothing matched.
func (e *ContactExtractor) Extract(text string) model.ContactInfo {
	return model.ContactInfo{
		Email:    firstMatch(emailPattern, text),
		Phone:    extractPhone(text),
		LinkedIn: firstMatch(linkedinPattern, text),
	}
}

// extractPhone tries the phone patterns in fixed priority order. The first
// pattern that yields any match wins; patterns are never merged.
func extractPhone(text string) *string {
	for _, p := range phonePatterns {
		if m := firstMatch(p, text); m != nil {
			return m
		}
	}
	return nil
}

func firstMatch(p *regexp.Regexp, text string) *string {
	if m := p.FindString(text); m != "" {
		return &m
	}
	return nil
}
