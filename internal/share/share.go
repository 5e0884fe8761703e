// Package share renders a finished (or in-progress) board as the spoiler-free
// emoji grid players paste into chats.
package share

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

const (
	squareCorrect = "🟩"
	squarePresent = "🟨"
	squareAbsent  = "⬛"
)

// DailyLabel is the puzzle label for a daily game.
func DailyLabel(dayNumber int) string {
	return fmt.Sprintf("Wordle %d", dayNumber)
}

// PracticeLabel is the puzzle label for practice games.
const PracticeLabel = "Wordle Practice"

// Text renders s under label. The score is the number of guesses for a win
// and "X" otherwise; a lost game reveals the secret on a final line.
func Text(label string, s *game.Session) string {
	score := "X"
	if s.Status == game.StatusWon {
		score = fmt.Sprint(len(s.Guesses))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s/%d\n\n", label, score, game.MaxGuesses)
	for _, g := range s.Guesses {
		for _, t := range g.Tiles {
			b.WriteString(Square(t.State))
		}
		b.WriteByte('\n')
	}
	if s.Status == game.StatusLost {
		fmt.Fprintf(&b, "\nThe word was: %s", s.Answer)
	}
	return b.String()
}

// Square maps a mark to its colored glyph.
func Square(m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return squareCorrect
	case game.MarkPresent:
		return squarePresent
	default:
		return squareAbsent
	}
}
