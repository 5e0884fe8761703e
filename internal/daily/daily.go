// internal/daily/daily.go
//
// Calendar-day arithmetic and deterministic word-of-the-day selection.
//
// The daily word is a pure function of the calendar date: the date is
// normalized to midnight, the whole days since Epoch are counted, and the
// answer list is indexed cyclically. Pre-epoch dates wrap the same way.

package daily

import (
	"time"
)

// Epoch is day 0 of the puzzle (the first published Wordle).
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD for the calendar day of t in t's location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC midnight.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Midnight drops the time of day, keeping t's calendar date and location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// civil maps the calendar date of t onto a UTC midnight so that day
// differences are exact multiples of 24h regardless of DST or zone.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if b
// is before a). Time of day is ignored.
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}

// DayNumber returns the whole days since Epoch for date.
func DayNumber(date time.Time) int {
	return DaysBetween(Epoch, date)
}

// WordIndex maps date onto [0, n). Returns 0 when n <= 0.
func WordIndex(date time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	i := DayNumber(date) % n
	if i < 0 {
		i += n
	}
	return i
}
