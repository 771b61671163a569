package driven

import "github.com/custodia-labs/datelens/internal/core/domain"

// Tokenizer splits a sentence into word-level tokens.
type Tokenizer interface {
	// Tokenize returns the tokens of text in order.
	// Every protected span is emitted verbatim as exactly one token,
	// however much whitespace or punctuation it contains.
	// Spans must be sorted by Start and must not overlap.
	Tokenize(text string, protected []domain.Span) []string
}
