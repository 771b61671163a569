package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// monthAbbrevs is keyed by the lower-cased first three letters of a month name.
var monthAbbrevs = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// monthFromName resolves a month word by its first three letters, so
// "Sept", "september" and "SEPTEMBRE" all resolve to September.
func monthFromName(word string) (time.Month, error) {
	key := word
	if len(key) > 3 {
		key = key[:3]
	}
	m, ok := monthAbbrevs[strings.ToLower(key)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnrecognizedMonth, word)
	}
	return m, nil
}
