package taggers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// DefaultTag is assigned to tokens no other link recognises.
const DefaultTag = "NN"

// Ensure Chain implements the interface.
var _ driven.Tagger = (*Chain)(nil)

// Chooser picks a tag for tokens[i], or reports false to defer.
type Chooser interface {
	Choose(tokens []string, i int) (string, bool)
}

// Sequence is a Chooser that tags a whole sentence at once. TagAll returns
// one tag per token, "" where it defers.
type Sequence interface {
	Chooser
	TagAll(tokens []string) []string
}

// Reserved reports whether tag belongs to the date overlay and so may not
// be produced by a baseline tagger.
func Reserved(tag string) bool {
	return strings.EqualFold(tag, domain.DateTag)
}

// ValidateDefaultTag checks a configured fallback tag.
func ValidateDefaultTag(tag string) error {
	if Reserved(tag) {
		return fmt.Errorf("%w: tag %q is reserved for dates", domain.ErrInvalidInput, tag)
	}
	if strings.ContainsFunc(tag, unicode.IsSpace) {
		return fmt.Errorf("%w: tag %q contains whitespace", domain.ErrInvalidInput, tag)
	}
	return nil
}

// Chain tries each Chooser in order and falls back to a default tag.
// It never emits the reserved date tag.
type Chain struct {
	choosers []Chooser
	fallback string
}

// NewChain creates a tagger that consults choosers in order. Tokens no
// chooser accepts receive fallback; an empty or invalid fallback is
// replaced with DefaultTag.
func NewChain(fallback string, choosers ...Chooser) *Chain {
	if fallback == "" || ValidateDefaultTag(fallback) != nil {
		fallback = DefaultTag
	}
	return &Chain{choosers: choosers, fallback: fallback}
}

// Tag returns one tagged token per input token.
func (c *Chain) Tag(tokens []string) []domain.TaggedToken {
	links := c.bind(tokens)
	out := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = domain.TaggedToken{Text: tok, Tag: c.choose(links, tokens, i)}
	}
	return out
}

// bind resolves Sequence links against tokens so each runs once.
func (c *Chain) bind(tokens []string) []Chooser {
	links := make([]Chooser, len(c.choosers))
	for i, ch := range c.choosers {
		if seq, ok := ch.(Sequence); ok {
			links[i] = sentenceTags(seq.TagAll(tokens))
			continue
		}
		links[i] = ch
	}
	return links
}

func (c *Chain) choose(links []Chooser, tokens []string, i int) string {
	for _, ch := range links {
		if tag, ok := ch.Choose(tokens, i); ok && !Reserved(tag) {
			return tag
		}
	}
	return c.fallback
}

// sentenceTags holds the output of a Sequence for one sentence.
type sentenceTags []string

func (s sentenceTags) Choose(_ []string, i int) (string, bool) {
	if i < len(s) && s[i] != "" {
		return s[i], true
	}
	return "", false
}

// Default assigns the same tag to every token.
type Default string

// Choose always accepts.
func (d Default) Choose([]string, int) (string, bool) {
	return string(d), true
}

// Lexicon tags known words by case-insensitive lookup.
type Lexicon map[string]string

// Choose accepts words present in the lexicon.
func (l Lexicon) Choose(tokens []string, i int) (string, bool) {
	tag, ok := l[strings.ToLower(tokens[i])]
	return tag, ok
}

// Rule tags tokens that fully match Pattern.
type Rule struct {
	Pattern *regexp.Regexp
	Tag     string
}

// MustRule compiles pattern so it has to match the whole token.
func MustRule(pattern, tag string) Rule {
	return Rule{Pattern: regexp.MustCompile(`^(?:` + pattern + `)$`), Tag: tag}
}

// Regexp tags a token with the first rule that matches it.
type Regexp []Rule

// Choose accepts tokens matched by any rule.
func (r Regexp) Choose(tokens []string, i int) (string, bool) {
	for _, rule := range r {
		if rule.Pattern.MatchString(tokens[i]) {
			return rule.Tag, true
		}
	}
	return "", false
}
