package daily

import "time"

// Clock supplies the current calendar date.
type Clock interface {
	// Today returns midnight of the current calendar day.
	Today() time.Time
}

// SystemClock reads the wall clock in Loc (time.Local when nil).
type SystemClock struct {
	Loc *time.Location
}

func (c SystemClock) Today() time.Time {
	now := time.Now()
	if c.Loc != nil {
		now = now.In(c.Loc)
	}
	return Midnight(now)
}

// Fixed is a Clock pinned to one date (useful for tests; they advance it with
// Add). Production code uses SystemClock.
type Fixed struct {
	T time.Time
}

// At returns a Fixed clock for the given calendar date.
func At(year int, month time.Month, day int) *Fixed {
	return &Fixed{T: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (f *Fixed) Today() time.Time { return Midnight(f.T) }

// Add moves the clock by days calendar days.
func (f *Fixed) Add(days int) { f.T = f.T.AddDate(0, 0, days) }
