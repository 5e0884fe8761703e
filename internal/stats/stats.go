// internal/stats/stats.go
//
// Win/loss statistics across daily games.
//
// Statistics are updated at most once per calendar day: a result for the
// same day as the last recorded one is ignored. Missing one or more
// calendar days between games resets the current streak, and so does a
// loss.

package stats

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
)

// Slots is the number of guess-distribution buckets (wins in 1..6 guesses).
const Slots = 6

// ErrInvalid marks a statistics record with impossible counts.
var ErrInvalid = errors.New("stats: inconsistent statistics")

// Statistics is the persisted aggregate.
type Statistics struct {
	GamesPlayed       int        `json:"gamesPlayed"`
	GamesWon          int        `json:"gamesWon"`
	CurrentStreak     int        `json:"currentStreak"`
	MaxStreak         int        `json:"maxStreak"`
	GuessDistribution [Slots]int `json:"guessDistribution"`
}

// Result is one finished daily game.
type Result struct {
	Date    string // YYYY-MM-DD
	Won     bool
	Guesses int // guesses used, 1..6
}

// Record applies r to s. lastPlayed is the date key of the previously
// recorded game ("" if none). It returns the updated statistics and whether
// anything was recorded.
func (s Statistics) Record(r Result, lastPlayed string) (Statistics, bool) {
	if lastPlayed != "" && lastPlayed == r.Date {
		return s, false
	}
	if missedDays(lastPlayed, r.Date) {
		s.CurrentStreak = 0
	}

	s.GamesPlayed++
	if r.Won {
		s.GamesWon++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		if r.Guesses >= 1 && r.Guesses <= Slots {
			s.GuessDistribution[r.Guesses-1]++
		}
	} else {
		s.CurrentStreak = 0
	}
	return s, true
}

// missedDays reports whether at least one calendar day lies strictly between
// last and today. Unparseable dates never reset the streak.
func missedDays(last, today string) bool {
	if last == "" {
		return false
	}
	l, err := daily.ParseDateKey(last)
	if err != nil {
		return false
	}
	t, err := daily.ParseDateKey(today)
	if err != nil {
		return false
	}
	return daily.DaysBetween(l, t) > 1
}

// WinPercent is the rounded share of games won, 0 when none were played.
func (s Statistics) WinPercent() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
}

// Validate rejects negative counts and totals that cannot add up.
func (s Statistics) Validate() error {
	if s.GamesPlayed < 0 || s.GamesWon < 0 || s.CurrentStreak < 0 || s.MaxStreak < 0 {
		return ErrInvalid
	}
	if s.GamesWon > s.GamesPlayed || s.CurrentStreak > s.MaxStreak || s.MaxStreak > s.GamesWon {
		return ErrInvalid
	}
	if lo.SomeBy(s.GuessDistribution[:], func(n int) bool { return n < 0 }) {
		return ErrInvalid
	}
	if lo.Sum(s.GuessDistribution[:]) > s.GamesWon {
		return ErrInvalid
	}
	return nil
}
