package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var errNotText = errors.New("content is not valid text")

// extractPDF concatenates the plain text of every page. Pages that fail to
// decode are skipped rather than failing the whole document.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; treat that as a
	// normal extraction failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
