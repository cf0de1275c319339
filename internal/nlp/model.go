// Package nlp wraps the prose NLP pipeline behind a process-wide, read-only
// model handle. The handle is constructed once at startup and injected into
// every component that tokenizes text; concurrent reads need no locking.
package nlp

import (
	"fmt"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// Token is a single tokenized word with its part-of-speech tag (Penn
// Treebank tag set, e.g. "NN", "NNS" for nouns).
type Token struct {
	Text string
	Tag  string
}

// Entity is a named entity recognized in the text.
type Entity struct {
	Text  string
	Label string
}

// Annotation is the result of a full pipeline pass: tokens with POS tags
// plus recognized named entities.
type Annotation struct {
	Tokens   []Token
	Entities []Entity
}

// Model is the shared tokenization resource. It is immutable after Load and
// safe for concurrent use.
type Model struct{}

// Load initializes the NLP pipeline and verifies it with a warm-up pass.
// Call it once at process start, before any analysis is dispatched.
func Load() (*Model, error) {
	m := &Model{}
	if _, err := m.Annotate("resume analyzer warm-up"); err != nil {
		return nil, fmt.Errorf("nlp warm-up: %w", err)
	}
	return m, nil
}

// Annotate runs tokenization, POS tagging, and named-entity recognition.
func (m *Model) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(true))
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	ann := &Annotation{}
	for _, t := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, Token{Text: t.Text, Tag: t.Tag})
	}
	for _, e := range doc.Entities() {
		ann.Entities = append(ann.Entities, Entity{Text: e.Text, Label: e.Label})
	}
	return ann, nil
}

// Tokenize runs tokenization only, skipping tagging and entity extraction.
// It is the cheap pass used for resume-side keyword sampling.
func (m *Model) Tokenize(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	tokens := make([]Token, 0, len(doc.Tokens()))
	for _, t := range doc.Tokens() {
		tokens = append(tokens, Token{Text: t.Text, Tag: t.Tag})
	}
	return tokens, nil
}

// IsAlpha reports whether s is non-empty and consists only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
