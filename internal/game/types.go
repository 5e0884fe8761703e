// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter classification with an explicit total order.
//   - Tile, Guess: one board cell and one committed row.
//   - Status, Mode: session lifecycle and play mode.

package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Mark is the classification of one letter.
// Marks are totally ordered: MarkEmpty < MarkAbsent < MarkPresent < MarkCorrect.
type Mark uint8

const (
	MarkEmpty   Mark = iota // no letter / not yet evaluated
	MarkAbsent              // letter is not in the answer (or all copies used)
	MarkPresent             // letter is in the answer at another position
	MarkCorrect             // letter is in the answer at this position
)

var markNames = [...]string{"empty", "absent", "present", "correct"}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// Upgrade returns the better of m and o. It is the max of the total order,
// so folding marks in any order yields the same result.
func (m Mark) Upgrade(o Mark) Mark {
	if o > m {
		return o
	}
	return m
}

// MarshalText encodes the mark as its lowercase name.
func (m Mark) MarshalText() ([]byte, error) {
	if int(m) >= len(markNames) {
		return nil, fmt.Errorf("game: invalid mark %d", uint8(m))
	}
	return []byte(markNames[m]), nil
}

// UnmarshalText decodes a lowercase mark name.
func (m *Mark) UnmarshalText(b []byte) error {
	for i, n := range markNames {
		if string(b) == n {
			*m = Mark(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown mark %q", string(b))
}

// Tile is one cell of the board.
type Tile struct {
	Letter string `json:"letter"`
	State  Mark   `json:"state"`
}

// Guess is a committed row. It is never mutated after creation.
type Guess struct {
	Word  string `json:"word"`
	Tiles []Tile `json:"tiles"`
}

// Solved reports whether every tile is correct.
func (g Guess) Solved() bool {
	return len(g.Tiles) > 0 && lo.EveryBy(g.Tiles, func(t Tile) bool {
		return t.State == MarkCorrect
	})
}

// Status is the session lifecycle state. Won and Lost are terminal.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPlaying || s == StatusWon || s == StatusLost
}

// Finished reports whether s is terminal.
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// Mode separates the shared daily puzzle from on-demand practice games.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
)

// ParseMode accepts "daily" or "practice".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDaily, ModePractice:
		return Mode(s), nil
	}
	return "", fmt.Errorf("game: unknown mode %q", s)
}
