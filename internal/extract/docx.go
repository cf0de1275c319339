package extract

import (
	"bytes"
	"fmt"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX parses a Word document from memory and returns its text
// content.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return stripTags(doc.Editable().GetContent()), nil
}

// stripTags removes the WordprocessingML markup left in the raw document
// content, keeping only character data. Paragraph boundaries become spaces
// so word counting stays intact.
func stripTags(content string) string {
	var b bytes.Buffer
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
