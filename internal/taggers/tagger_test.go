package taggers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

func tagsOf(tagged []domain.TaggedToken) []string {
	tags := make([]string, len(tagged))
	for i, tt := range tagged {
		tags[i] = tt.Tag
	}
	return tags
}

func TestNewChain_EmptyFallbackUsesDefault(t *testing.T) {
	c := NewChain("")
	tagged := c.Tag([]string{"anything"})
	require.Len(t, tagged, 1)
	assert.Equal(t, DefaultTag, tagged[0].Tag)
}

func TestChain_FirstChooserWins(t *testing.T) {
	c := NewChain("X",
		Lexicon{"war": "LEX"},
		Regexp{MustRule(`w.*`, "RX")},
	)

	tagged := c.Tag([]string{"war", "won", "peace"})
	assert.Equal(t, []string{"LEX", "RX", "X"}, tagsOf(tagged))
}

func TestChain_PreservesTokenText(t *testing.T) {
	tokens := []string{"The", "War"}
	tagged := NewEnglish("").Tag(tokens)

	require.Len(t, tagged, 2)
	assert.Equal(t, "The", tagged[0].Text)
	assert.Equal(t, "War", tagged[1].Text)
}

func TestDefault_Choose(t *testing.T) {
	tag, ok := Default("NN").Choose([]string{"x"}, 0)
	assert.True(t, ok)
	assert.Equal(t, "NN", tag)
}

func TestLexicon_CaseInsensitive(t *testing.T) {
	tag, ok := closedClass.Choose([]string{"The"}, 0)
	assert.True(t, ok)
	assert.Equal(t, "DT", tag)
}

func TestMustRule_IsAnchored(t *testing.T) {
	r := Regexp{MustRule(`\d+`, "CD")}

	_, ok := r.Choose([]string{"12abc"}, 0)
	assert.False(t, ok)

	tag, ok := r.Choose([]string{"12"}, 0)
	assert.True(t, ok)
	assert.Equal(t, "CD", tag)
}

func TestNewRules_Tags(t *testing.T) {
	tests := []struct {
		token string
		tag   string
	}{
		{"the", "DT"},
		{"on", "IN"},
		{"was", "VBD"},
		{"she", "PRP"},
		{"1783", "CD"},
		{"1,000", "CD"},
		{"ended", "VBD"},
		{"fighting", "VBG"},
		{"quickly", "RB"},
		{"election", "NN"},
		{"colonial", "JJ"},
		{"treaties", "NNS"},
		{".", "."},
		{",", ","},
		{"—", "SYM"},
		{"war", "NN"},
	}

	tagger := NewRules("")
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tagged := tagger.Tag([]string{tt.token})
			require.Len(t, tagged, 1)
			assert.Equal(t, tt.tag, tagged[0].Tag)
		})
	}
}

func TestNewEnglish_NeverTagsDate(t *testing.T) {
	tokens := []string{"september 3, 1783", "1955-01-17", "9/30/23", "3 september 1783"}
	for _, tt := range NewEnglish("").Tag(tokens) {
		assert.NotEqual(t, domain.DateTag, tt.Tag, tt.Text)
	}
}

func TestNewRules_CustomDefault(t *testing.T) {
	tagged := NewRules("FW").Tag([]string{"zxq"})
	assert.Equal(t, "FW", tagged[0].Tag)
}

func TestNewEnglish_TagsSentence(t *testing.T) {
	tokens := []string{"the", "war", "ended", "on", "september 3, 1783", "."}

	tagged := NewEnglish("").Tag(tokens)

	require.Len(t, tagged, len(tokens))
	assert.Equal(t, []string{"DT", "NN", "VBD", "IN", "NN", "."}, tagsOf(tagged))
}

func TestNewEnglish_BacksOffWhereModelDefers(t *testing.T) {
	// The model tags "0" as a trace token, which the chain hands to the rules.
	tagged := NewEnglish("").Tag([]string{"0"})

	require.Len(t, tagged, 1)
	assert.Equal(t, "CD", tagged[0].Tag)
}

func TestChain_ReservedFallbackReplaced(t *testing.T) {
	tests := []string{domain.DateTag, "date", "two words"}

	for _, fallback := range tests {
		t.Run(fallback, func(t *testing.T) {
			tagged := NewChain(fallback).Tag([]string{"cat", "sat"})
			assert.Equal(t, []string{DefaultTag, DefaultTag}, tagsOf(tagged))
		})
	}
}

func TestNewEnglish_ReservedDefaultNeverTagsWords(t *testing.T) {
	tokens := []string{"the", "cat", "sat", "on", "3 may 2020", "zxq", "."}

	for _, tt := range NewEnglish(domain.DateTag).Tag(tokens) {
		assert.NotEqual(t, domain.DateTag, tt.Tag, tt.Text)
	}
}

func TestChain_SkipsReservedFromChoosers(t *testing.T) {
	c := NewChain("X", Lexicon{"cat": domain.DateTag}, Lexicon{"cat": "NN"})

	tagged := c.Tag([]string{"cat"})
	assert.Equal(t, "NN", tagged[0].Tag)
}

type countingSequence struct {
	calls int
	tags  []string
}

func (s *countingSequence) TagAll(tokens []string) []string {
	s.calls++
	return s.tags
}

func (s *countingSequence) Choose(tokens []string, i int) (string, bool) {
	t := s.TagAll(tokens)[i]
	return t, t != ""
}

func TestChain_SequenceRunsOncePerSentence(t *testing.T) {
	seq := &countingSequence{tags: []string{"DT", "", "VBD"}}
	c := NewChain("X", seq, Lexicon{"war": "LEX"})

	tagged := c.Tag([]string{"the", "war", "ended"})

	assert.Equal(t, 1, seq.calls)
	assert.Equal(t, []string{"DT", "LEX", "VBD"}, tagsOf(tagged))
}

func TestChain_ShortSequenceDefers(t *testing.T) {
	seq := &countingSequence{tags: []string{"DT"}}

	tagged := NewChain("X", seq).Tag([]string{"the", "war"})
	assert.Equal(t, []string{"DT", "X"}, tagsOf(tagged))
}

func TestPerceptron_TagAllAlignsWithTokens(t *testing.T) {
	tags := NewPerceptron().TagAll([]string{"the", "", "war"})

	require.Len(t, tags, 3)
	assert.Equal(t, "DT", tags[0])
	assert.Empty(t, tags[1])
	assert.NotEmpty(t, tags[2])
}

func TestPerceptron_DefersOnTraceTokens(t *testing.T) {
	p := NewPerceptron()

	_, ok := p.Choose([]string{"0"}, 0)
	assert.False(t, ok)
}

func TestPerceptron_SharesModel(t *testing.T) {
	assert.Same(t, NewPerceptron().model, NewPerceptron().model)
}

func TestValidateDefaultTag(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{"", false},
		{"NN", false},
		{"FW", false},
		{domain.DateTag, true},
		{"Date", true},
		{"N N", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			err := ValidateDefaultTag(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
