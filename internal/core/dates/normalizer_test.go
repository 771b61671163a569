package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

func mustMatch(t *testing.T, text string) domain.DateMatch {
	t.Helper()
	matches := FindAll(text)
	require.Len(t, matches, 1, "expected one match in %q", text)
	return matches[0]
}

func TestNormalize_Success(t *testing.T) {
	tests := []struct {
		text  string
		year  int
		month time.Month
		day   int
	}{
		{"september 3, 1783", 1783, time.September, 3},
		{"Sept 30, 2023", 2023, time.September, 30},
		{"9/30/23", 2023, time.September, 30},
		{"12/25/1999", 1999, time.December, 25},
		{"1955-01-17", 1955, time.January, 17},
		{"3 september 1783", 1783, time.September, 3},
		{"17 JAN 1955", 1955, time.January, 17},
		{"29 february 2024", 2024, time.February, 29},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := Normalize(mustMatch(t, tt.text))
			require.NoError(t, err)
			assert.Equal(t, domain.CalendarDate{Year: tt.year, Month: tt.month, Day: tt.day}, d)
		})
	}
}

func TestNormalize_UnrecognizedMonth(t *testing.T) {
	for _, text := range []string{"blah 31, 2020", "3 smarch 2020", "ma 3, 2020"} {
		t.Run(text, func(t *testing.T) {
			_, err := Normalize(mustMatch(t, text))
			assert.ErrorIs(t, err, domain.ErrUnrecognizedMonth)
		})
	}
}

func TestNormalize_InvalidCalendarDate(t *testing.T) {
	for _, text := range []string{
		"april 31, 2020",
		"2/29/23",
		"13/01/2020",
		"2023-02-30",
		"0000-01-01",
		"0 may 2020",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := Normalize(mustMatch(t, text))
			assert.ErrorIs(t, err, domain.ErrInvalidCalendarDate)
		})
	}
}

func TestNormalize_MalformedMatch(t *testing.T) {
	tests := []domain.DateMatch{
		{Text: "2020-01", Dialect: domain.DialectISO},
		{Text: "1/2", Dialect: domain.DialectSlash},
		{Text: "may 2020", Dialect: domain.DialectMonthDayYear},
		{Text: "3 may", Dialect: domain.DialectDayMonthYear},
		{Text: "2020-01-01"},
	}

	for _, m := range tests {
		t.Run(m.Text, func(t *testing.T) {
			_, err := Normalize(m)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestResolve_Offset(t *testing.T) {
	epoch := domain.CalendarDate{Year: 2023, Month: time.October, Day: 4}

	r, err := Resolve(mustMatch(t, "9/30/23"), epoch)
	require.NoError(t, err)
	assert.Equal(t, "9/30/23", r.Text)
	assert.Equal(t, -4, r.DayOffset)

	r, err = Resolve(mustMatch(t, "2023-10-14"), epoch)
	require.NoError(t, err)
	assert.Equal(t, 10, r.DayOffset)
}

func TestResolve_PropagatesError(t *testing.T) {
	_, err := Resolve(mustMatch(t, "blah 31, 2020"), domain.CalendarDate{Year: 2023, Month: 1, Day: 1})
	assert.ErrorIs(t, err, domain.ErrUnrecognizedMonth)
}

// Every date rendered in the canonical month-day-year form parses back
// to itself and is recognised in that dialect.
func TestCanonical_RoundTrip(t *testing.T) {
	start := time.Date(1699, time.December, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1500; i++ {
		tm := start.AddDate(0, 0, i*97)
		d := domain.CalendarDate{Year: tm.Year(), Month: tm.Month(), Day: tm.Day()}

		text := Canonical(d)
		m := mustMatch(t, text)
		require.Equal(t, domain.DialectMonthDayYear, m.Dialect, text)

		got, err := Normalize(m)
		require.NoError(t, err, text)
		require.Equal(t, d, got, text)
	}
}

// Offsets carry the sign of the ordering and the exact day count.
func TestResolve_OffsetSignMatchesOrdering(t *testing.T) {
	epoch := domain.CalendarDate{Year: 1783, Month: time.September, Day: 3}
	epochTime := epoch.Time()

	for _, delta := range []int{-100000, -366, -1, 0, 1, 59, 365, 87689} {
		tm := epochTime.AddDate(0, 0, delta)
		d := domain.CalendarDate{Year: tm.Year(), Month: tm.Month(), Day: tm.Day()}

		r, err := Resolve(mustMatch(t, Canonical(d)), epoch)
		require.NoError(t, err)
		assert.Equal(t, delta, r.DayOffset)
		assert.Equal(t, d.Before(epoch), r.DayOffset < 0)
	}
}
