package analyzer

import "resumeapi/internal/model"

// SectionDetector classifies presence of the seven fixed resume sections.
// Six are detected by whole-word synonym match; contact_info is true iff
// contact extraction finds an email or phone.
type SectionDetector struct {
	contacts *ContactExtractor
}

// NewSectionDetector creates a SectionDetector backed by the given contact
// extractor.
func NewSectionDetector(contacts *ContactExtractor) *SectionDetector {
	return &SectionDetector{contacts: contacts}
}

// Detect evaluates every section independently; a document can match zero,
// some, or all.
func (d *SectionDetector) Detect(text string) model.SectionFlags {
	info := d.contacts.Extract(text)
	return model.SectionFlags{
		ContactInfo:    info.Email != nil || info.Phone != nil,
		Summary:        sectionPatterns["summary"].MatchString(text),
		Experience:     sectionPatterns["experience"].MatchString(text),
		Education:      sectionPatterns["education"].MatchString(text),
		Skills:         sectionPatterns["skills"].MatchString(text),
		Projects:       sectionPatterns["projects"].MatchString(text),
		Certifications: sectionPatterns["certifications"].MatchString(text),
	}
}
