package daily

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Answers is the ordered answer catalog the selector draws from.
type Answers interface {
	Len() int
	At(i int) string
	Random() string
}

// Selector picks the word of the day and practice words.
type Selector struct {
	answers Answers
	clock   Clock
}

// NewSelector binds a selector to an answer catalog and a clock.
func NewSelector(a Answers, c Clock) *Selector {
	return &Selector{answers: a, clock: c}
}

// Word returns the answer for the calendar date of t.
func (s *Selector) Word(t time.Time) string {
	idx := WordIndex(t, s.answers.Len())
	w := s.answers.At(idx)
	log.Debug().
		Str("date", DateKey(t)).
		Int("day", DayNumber(t)).
		Int("index", idx).
		Msg("daily word selected")
	return w
}

// Today returns today's date key and word.
func (s *Selector) Today() (date string, word string) {
	t := s.clock.Today()
	return DateKey(t), s.Word(t)
}

// DayNumber is the puzzle number for today.
func (s *Selector) DayNumber() int {
	return DayNumber(s.clock.Today())
}

// Random returns a uniformly random answer for practice play.
func (s *Selector) Random() string {
	return s.answers.Random()
}

// Clock exposes the selector's clock.
func (s *Selector) Clock() Clock { return s.clock }
