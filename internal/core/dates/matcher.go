package dates

import (
	"iter"
	"regexp"
	"slices"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// Alternatives are tried in this order at every scan position; the first
// one that matches consumes its span. Group n captures dialect n.
const patternSource = `([A-Za-z]+ \d{1,2}, \d{4})` +
	`|(\d{1,2}/\d{1,2}/(?:\d{4}|\d{2}))` +
	`|(\d{4}-\d{2}-\d{2})` +
	`|(\d{1,2} [A-Za-z]+ \d{4})`

var (
	datePattern  = regexp.MustCompile(patternSource)
	wholePattern = regexp.MustCompile(`^(?:` + patternSource + `)$`)
)

// groupDialects maps capture group index to dialect.
var groupDialects = [...]domain.Dialect{
	1: domain.DialectMonthDayYear,
	2: domain.DialectSlash,
	3: domain.DialectISO,
	4: domain.DialectDayMonthYear,
}

// Matches returns the date-like substrings of text, left to right and
// non-overlapping. The sequence is computed lazily and may be ranged over
// any number of times.
func Matches(text string) iter.Seq[domain.DateMatch] {
	return func(yield func(domain.DateMatch) bool) {
		offset := 0
		for offset < len(text) {
			loc := datePattern.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				return
			}
			start, end := offset+loc[0], offset+loc[1]
			m := domain.DateMatch{
				Text:    text[start:end],
				Span:    domain.Span{Start: start, End: end},
				Dialect: dialectOf(loc),
			}
			if !yield(m) {
				return
			}
			offset = end
		}
	}
}

// FindAll collects every match of text.
func FindAll(text string) []domain.DateMatch {
	return slices.Collect(Matches(text))
}

// IsDate reports whether the whole of token is in one of the date syntaxes.
func IsDate(token string) bool {
	return wholePattern.MatchString(token)
}

func dialectOf(loc []int) domain.Dialect {
	for g := 1; g < len(groupDialects); g++ {
		if loc[2*g] >= 0 {
			return groupDialects[g]
		}
	}
	return 0
}
