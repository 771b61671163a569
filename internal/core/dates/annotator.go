package dates

import (
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// DropFunc is called for every match that fails to normalise.
type DropFunc func(m domain.DateMatch, err error)

// Annotator resolves, tokenizes and tags the dates of single sentences.
// It holds no per-sentence state and may be reused for any number of sentences.
type Annotator struct {
	tokenizer driven.Tokenizer
	tagger    driven.Tagger
	onDrop    DropFunc
}

// Option configures the annotator.
type Option func(*Annotator)

// WithDropFunc registers a callback for matches that fail to normalise.
func WithDropFunc(fn DropFunc) Option {
	return func(a *Annotator) {
		if fn != nil {
			a.onDrop = fn
		}
	}
}

// NewAnnotator creates an annotator over the given tokenizer and baseline tagger.
func NewAnnotator(tokenizer driven.Tokenizer, tagger driven.Tagger, opts ...Option) *Annotator {
	a := &Annotator{
		tokenizer: tokenizer,
		tagger:    tagger,
		onDrop:    func(domain.DateMatch, error) {},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Annotate runs Substitute and Overlay over one sentence.
func (a *Annotator) Annotate(sentence string, epoch domain.CalendarDate) domain.SentenceResult {
	tokens, table := a.Substitute(sentence, epoch)
	return domain.SentenceResult{
		Sentence: sentence,
		Epoch:    epoch,
		Dates:    table,
		Tokens:   a.Overlay(tokens),
	}
}

// Substitute resolves every date match of sentence against epoch and
// tokenizes the sentence with each resolved date held together as a
// single token. Resolved dates are numbered in order of appearance;
// unresolved matches get no number and are tokenized like any other text.
func (a *Annotator) Substitute(sentence string, epoch domain.CalendarDate) ([]string, domain.SentenceDateTable) {
	var table domain.SentenceDateTable
	var protected []domain.Span

	for m := range Matches(sentence) {
		resolved, err := Resolve(m, epoch)
		if err != nil {
			a.onDrop(m, err)
			continue
		}
		table.Add(resolved)
		protected = append(protected, m.Span)
	}

	return a.tokenizer.Tokenize(sentence, protected), table
}

// Overlay tags tokens with the baseline tagger, then replaces the tag of
// every token that is a date with domain.DateTag. The result has exactly
// one entry per token.
func (a *Annotator) Overlay(tokens []string) []domain.TaggedToken {
	baseline := a.tagger.Tag(tokens)

	out := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i].Text = tok
		if i < len(baseline) {
			out[i].Tag = baseline[i].Tag
		}
		if IsDate(tok) {
			out[i].Tag = domain.DateTag
		}
	}
	return out
}
