// Package treebank provides a Penn Treebank style word tokenizer.
package treebank

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

const (
	openers  = "([{<\"`"
	closers  = ")]}>\"'"
	trailers = ",;:!?"
)

var (
	// Numbers keep their internal separators ("1,000", "3.5", "9/30/23").
	// Everything else splits on internal commas and sentence punctuation.
	corePieces = regexp.MustCompile(`\d+(?:[.,:/-]\d+)+|[^,;!?]+|[,;!?]`)

	negation    = regexp.MustCompile(`(?i)^(.+)(n't)$`)
	contraction = regexp.MustCompile(`(?i)^(.+)('s|'re|'ve|'ll|'d|'m)$`)
)

// Tokenizer splits sentences into words and punctuation.
type Tokenizer struct{}

// New creates a new Treebank tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

type chunk struct {
	text      string
	protected bool
}

// Tokenize splits text into tokens. Protected spans are emitted verbatim;
// spans that are empty, out of range, or overlap an earlier span are ignored.
func (t *Tokenizer) Tokenize(text string, protected []domain.Span) []string {
	chunks := make([]chunk, 0, len(text)/4+1)
	pos := 0
	for _, sp := range usableSpans(text, protected) {
		chunks = appendFields(chunks, text[pos:sp.Start])
		chunks = append(chunks, chunk{text: text[sp.Start:sp.End], protected: true})
		pos = sp.End
	}
	chunks = appendFields(chunks, text[pos:])

	tokens := make([]string, 0, len(chunks))
	for i, c := range chunks {
		if c.protected {
			tokens = append(tokens, c.text)
			continue
		}
		tokens = append(tokens, splitChunk(c.text, i == len(chunks)-1)...)
	}
	return tokens
}

func usableSpans(text string, spans []domain.Span) []domain.Span {
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b domain.Span) int {
		return a.Start - b.Start
	})

	out := sorted[:0]
	end := 0
	for _, sp := range sorted {
		if sp.Start < end || sp.Start < 0 || sp.End > len(text) || sp.Len() <= 0 {
			continue
		}
		out = append(out, sp)
		end = sp.End
	}
	return out
}

func appendFields(chunks []chunk, s string) []chunk {
	for _, f := range strings.FieldsFunc(s, unicode.IsSpace) {
		chunks = append(chunks, chunk{text: f})
	}
	return chunks
}

// splitChunk splits one whitespace-free chunk. The sentence-final period is
// only split off when the chunk is the last one of the text.
func splitChunk(s string, final bool) []string {
	var head []string
	for s != "" && strings.IndexByte(openers, s[0]) >= 0 {
		head = append(head, s[:1])
		s = s[1:]
	}

	var tail []string // reversed
	onlyClosers := true
loop:
	for s != "" {
		last := s[len(s)-1]
		switch {
		case strings.HasSuffix(s, "..."):
			tail = append(tail, "...")
			s = s[:len(s)-3]
			onlyClosers = false
		case strings.IndexByte(closers, last) >= 0 && len(s) > 1:
			tail = append(tail, s[len(s)-1:])
			s = s[:len(s)-1]
		case strings.IndexByte(trailers, last) >= 0:
			tail = append(tail, s[len(s)-1:])
			s = s[:len(s)-1]
			onlyClosers = false
		case last == '.' && final && onlyClosers && len(s) > 1:
			tail = append(tail, ".")
			s = s[:len(s)-1]
			onlyClosers = false
		default:
			break loop
		}
	}

	tokens := head
	for _, piece := range corePieces.FindAllString(s, -1) {
		tokens = append(tokens, splitContraction(piece)...)
	}
	for i := len(tail) - 1; i >= 0; i-- {
		tokens = append(tokens, tail[i])
	}
	return tokens
}

func splitContraction(word string) []string {
	if m := negation.FindStringSubmatch(word); m != nil {
		return []string{m[1], m[2]}
	}
	if m := contraction.FindStringSubmatch(word); m != nil {
		return []string{m[1], m[2]}
	}
	return []string{word}
}
