package taggers

import (
	"sync"

	"github.com/jdkato/prose/tag"
)

// untagged is the model's tag for treebank trace tokens such as "0".
const untagged = "-NONE-"

var (
	modelOnce sync.Once
	model     *tag.PerceptronTagger
)

// Perceptron tags a sentence with the averaged perceptron model bundled
// with prose. The model is decoded once per process and shared.
type Perceptron struct {
	model *tag.PerceptronTagger
}

// NewPerceptron returns a Perceptron backed by the shared model.
func NewPerceptron() *Perceptron {
	modelOnce.Do(func() {
		model = tag.NewPerceptronTagger()
	})
	return &Perceptron{model: model}
}

// TagAll returns one tag per token. Tokens the model skips or cannot
// classify get "".
func (p *Perceptron) TagAll(tokens []string) []string {
	out := make([]string, len(tokens))
	tagged := p.model.Tag(tokens)

	// The model drops empty words, so tagged may be shorter than tokens.
	j := 0
	for i, tok := range tokens {
		if tok == "" || j >= len(tagged) {
			continue
		}
		if t := tagged[j].Tag; t != untagged && !Reserved(t) {
			out[i] = t
		}
		j++
	}
	return out
}

// Choose tags the whole sentence and reports the tag of tokens[i].
// Chain calls TagAll once per sentence instead.
func (p *Perceptron) Choose(tokens []string, i int) (string, bool) {
	t := p.TagAll(tokens)[i]
	return t, t != ""
}
