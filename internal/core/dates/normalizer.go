package dates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// Normalize converts a match into a calendar date according to its dialect.
//
// Errors wrap domain.ErrUnrecognizedMonth when a month word is not one of
// jan..dec, domain.ErrInvalidCalendarDate when the numbers do not form a
// real date, and domain.ErrInvalidInput when the text does not have the
// shape its dialect promises.
func Normalize(m domain.DateMatch) (domain.CalendarDate, error) {
	var year, month, day string

	switch m.Dialect {
	case domain.DialectMonthDayYear:
		fields := strings.Fields(m.Text)
		if len(fields) != 3 {
			return domain.CalendarDate{}, malformed(m)
		}
		mon, err := monthFromName(fields[0])
		if err != nil {
			return domain.CalendarDate{}, err
		}
		month = strconv.Itoa(int(mon))
		day = strings.TrimSuffix(fields[1], ",")
		year = fields[2]

	case domain.DialectSlash:
		parts := strings.Split(m.Text, "/")
		if len(parts) != 3 {
			return domain.CalendarDate{}, malformed(m)
		}
		month, day, year = parts[0], parts[1], parts[2]
		// Two-digit years are taken to be in the 21st century.
		if len(year) < 4 {
			year = "20" + year
		}

	case domain.DialectISO:
		parts := strings.Split(m.Text, "-")
		if len(parts) != 3 {
			return domain.CalendarDate{}, malformed(m)
		}
		year, month, day = parts[0], parts[1], parts[2]

	case domain.DialectDayMonthYear:
		fields := strings.Fields(m.Text)
		if len(fields) != 3 {
			return domain.CalendarDate{}, malformed(m)
		}
		mon, err := monthFromName(fields[1])
		if err != nil {
			return domain.CalendarDate{}, err
		}
		day = fields[0]
		month = strconv.Itoa(int(mon))
		year = fields[2]

	default:
		return domain.CalendarDate{}, malformed(m)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.CalendarDate{}, malformed(m)
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return domain.CalendarDate{}, malformed(m)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return domain.CalendarDate{}, malformed(m)
	}

	return domain.NewCalendarDate(y, mo, d)
}

// Resolve normalises a match and computes its offset from epoch.
func Resolve(m domain.DateMatch, epoch domain.CalendarDate) (domain.ResolvedDate, error) {
	date, err := Normalize(m)
	if err != nil {
		return domain.ResolvedDate{}, err
	}
	return domain.ResolvedDate{
		Text:      m.Text,
		Span:      m.Span,
		Date:      date,
		DayOffset: date.DaysSince(epoch),
	}, nil
}

// Canonical renders a date in the month-day-year dialect, e.g.
// "September 03, 1783". Normalize parses the result back to the same date.
func Canonical(d domain.CalendarDate) string {
	return d.Long()
}

func malformed(m domain.DateMatch) error {
	return fmt.Errorf("%w: %q is not a %s date", domain.ErrInvalidInput, m.Text, m.Dialect)
}
