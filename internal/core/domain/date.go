package domain

import (
	"fmt"
	"time"
)

// Dialect identifies which surface syntax a date match was recognised in.
type Dialect int

const (
	// DialectMonthDayYear is "<MonthName> <Day>, <Year>", e.g. "september 3, 1783".
	DialectMonthDayYear Dialect = iota + 1

	// DialectSlash is "<Month>/<Day>/<Year>" with a 2 or 4 digit year, e.g. "9/30/23".
	DialectSlash

	// DialectISO is "<Year>-<Month>-<Day>", e.g. "1955-01-17".
	DialectISO

	// DialectDayMonthYear is "<Day> <MonthName> <Year>", e.g. "3 september 1783".
	DialectDayMonthYear
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectMonthDayYear:
		return "month-day-year"
	case DialectSlash:
		return "slash"
	case DialectISO:
		return "iso"
	case DialectDayMonthYear:
		return "day-month-year"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) within a sentence.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// DateMatch is a date-like substring recognised by the pattern matcher.
// It carries no semantic validation; that happens during normalisation.
type DateMatch struct {
	// Text is the raw matched substring.
	Text string

	// Span locates Text in the source sentence.
	Span Span

	// Dialect is the surface syntax that matched.
	Dialect Dialect
}

// CalendarDate is a valid Gregorian date without time or zone.
// Values are only constructed through NewCalendarDate or ParseEpoch.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate validates and builds a CalendarDate.
// Returns ErrInvalidCalendarDate for impossible combinations such as
// April 31, February 29 in a common year, month 13, or year 0.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}
	return CalendarDate{Year: year, Month: time.Month(month), Day: day}, nil
}

// ParseEpoch parses a reference epoch in YYYY-MM-DD form.
func ParseEpoch(s string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidEpoch, s)
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Time returns the date as midnight UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysSince returns the signed number of days from other to d.
// The result is negative when d is before other.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Long formats the date as "January 02, 2006".
func (d CalendarDate) Long() string {
	return d.Time().Format("January 02, 2006")
}

const secondsPerDay = 24 * 60 * 60

// ResolvedDate is a DateMatch that normalised successfully.
// It is never mutated after creation.
type ResolvedDate struct {
	// Text is the raw date text as it appeared in the sentence.
	Text string

	// Span locates Text in the source sentence.
	Span Span

	// Date is the normalised calendar date.
	Date CalendarDate

	// DayOffset is Date minus the reference epoch, in days.
	DayOffset int
}
