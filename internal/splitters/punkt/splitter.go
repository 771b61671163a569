// Package punkt splits text into sentences with the pre-trained English
// Punkt model shipped by github.com/neurosnap/sentences.
package punkt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// Ensure Splitter implements the interface.
var _ driven.SentenceSplitter = (*Splitter)(nil)

// paragraphBreak separates blocks that never share a sentence.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Splitter wraps a Punkt sentence tokenizer.
type Splitter struct {
	tokenizer tokenizer
}

// New loads the English Punkt model.
func New() (*Splitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english punkt model: %w", err)
	}
	return &Splitter{tokenizer: tokenizer}, nil
}

// Split returns the trimmed, non-empty sentences of text in order.
// Blank lines are hard boundaries; single newlines are treated as spaces.
func (s *Splitter) Split(text string) []string {
	var out []string
	for _, block := range paragraphBreak.Split(text, -1) {
		block = strings.Join(strings.Fields(block), " ")
		if block == "" {
			continue
		}
		for _, sentence := range s.tokenizer.Tokenize(block) {
			if trimmed := strings.TrimSpace(sentence.Text); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
