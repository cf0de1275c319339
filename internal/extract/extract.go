// Package extract converts uploaded document bytes into plain text. It is
// the external text-extraction capability consumed by the analysis
// orchestrator; parsing works entirely in memory, no local disk staging.
package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format tags the inferred container format of an upload.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// DetectFormat infers the document format from the declared filename.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatDOCX
	case "":
		return FormatUnknown
	default:
		return FormatText
	}
}

// FileType returns the lowercased extension segment used in report
// metadata, or the whole name when there is no extension.
func FileType(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return strings.ToLower(filename)
}

// TextExtractor converts document bytes to plain text. ok is false when no
// text could be extracted (unsupported, corrupt, or empty document).
type TextExtractor interface {
	Extract(data []byte, filename string) (text string, ok bool)
}

// DocumentExtractor dispatches on the inferred format: PDF and DOCX go
// through their parsers, anything else is treated as UTF-8 text.
type DocumentExtractor struct{}

// New creates a DocumentExtractor.
func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

var _ TextExtractor = (*DocumentExtractor)(nil)

// Extract returns the plain text content of the document, or ok=false when
// extraction yields nothing usable.
func (e *DocumentExtractor) Extract(data []byte, filename string) (string, bool) {
	var (
		text string
		err  error
	)
	switch DetectFormat(filename) {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	default:
		text, err = extractPlain(data)
	}
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// extractPlain accepts the bytes as text when they form valid UTF-8.
func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errNotText
	}
	return string(data), nil
}
