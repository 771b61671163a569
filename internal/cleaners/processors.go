package cleaners

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// Processor names as used in configuration.
const (
	NameNFKC       = "nfkc"
	NameBrackets   = "brackets"
	NameMarkup     = "markup"
	NameDots       = "dots"
	NameWhitespace = "whitespace"
	NameLowercase  = "lowercase"
)

var (
	_ driven.TextProcessor = NFKC{}
	_ driven.TextProcessor = Brackets{}
	_ driven.TextProcessor = Markup{}
	_ driven.TextProcessor = Dots{}
	_ driven.TextProcessor = Whitespace{}
	_ driven.TextProcessor = Lowercase{}
)

var (
	bracketed  = regexp.MustCompile(`\[[^\]]*\]`)
	angled     = regexp.MustCompile(`<[^>]*>`)
	dotRuns    = regexp.MustCompile(`\.{2,}`)
	spaceRuns  = regexp.MustCompile(`[ \t\p{Zs}]+`)
	spaceLines = regexp.MustCompile(` ?\n ?`)
)

// NFKC applies Unicode compatibility composition, folding non-breaking
// spaces, ligatures and full-width digits into their plain forms.
type NFKC struct{}

// Name returns the processor name.
func (NFKC) Name() string { return NameNFKC }

// Process normalises text to NFKC.
func (NFKC) Process(_ context.Context, text string) (string, error) {
	return norm.NFKC.String(text), nil
}

// Brackets removes bracketed reference markers such as "[12]" or "[citation needed]".
type Brackets struct{}

// Name returns the processor name.
func (Brackets) Name() string { return NameBrackets }

// Process strips bracketed spans.
func (Brackets) Process(_ context.Context, text string) (string, error) {
	return bracketed.ReplaceAllString(text, ""), nil
}

// Markup removes leftover angle-bracket tags.
type Markup struct{}

// Name returns the processor name.
func (Markup) Name() string { return NameMarkup }

// Process strips tag remnants.
func (Markup) Process(_ context.Context, text string) (string, error) {
	return angled.ReplaceAllString(text, ""), nil
}

// Dots collapses runs of periods into a single period.
type Dots struct{}

// Name returns the processor name.
func (Dots) Name() string { return NameDots }

// Process collapses period runs.
func (Dots) Process(_ context.Context, text string) (string, error) {
	return dotRuns.ReplaceAllString(text, "."), nil
}

// Whitespace collapses horizontal whitespace and trims the result.
// Newlines survive so paragraph boundaries stay visible to the splitter.
type Whitespace struct{}

// Name returns the processor name.
func (Whitespace) Name() string { return NameWhitespace }

// Process collapses spaces.
func (Whitespace) Process(_ context.Context, text string) (string, error) {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = spaceLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text), nil
}

// Lowercase folds text to lower case.
type Lowercase struct{}

// Name returns the processor name.
func (Lowercase) Name() string { return NameLowercase }

// Process lower-cases text. A Caser is stateful, so each call builds its own.
func (Lowercase) Process(_ context.Context, text string) (string, error) {
	return cases.Lower(language.Und).String(text), nil
}
