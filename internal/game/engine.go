// internal/game/engine.go
//
// Game session state machine for a single Wordle game.
// Responsibilities:
//   - Create sessions for a secret word, date, and mode (daily/practice).
//   - Edit the in-progress guess buffer (append/remove letters).
//   - Validate and commit guesses, fold their marks into the letter map.
//   - Track state transitions: playing → won/lost.
//
// Every mutation is a no-op outside StatusPlaying. A rejected submit leaves
// the session exactly as it was.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// MaxGuesses is the number of rows on the board.
const MaxGuesses = 6

// ErrRejected is wrapped by every submit rejection; callers that only need
// the accepted/rejected signal test errors.Is(err, ErrRejected).
var ErrRejected = errors.New("guess rejected")

var (
	ErrNotPlaying     = fmt.Errorf("%w: game is over", ErrRejected)
	ErrWrongLength    = fmt.Errorf("%w: guess must be %d letters", ErrRejected, words.Length)
	ErrDuplicateGuess = fmt.Errorf("%w: already guessed", ErrRejected)
	ErrNotInWordList  = fmt.Errorf("%w: not in word list", ErrRejected)
)

// Dictionary decides which words may be guessed.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Session is the mutable state of one game. The JSON form is the persisted
// session record.
type Session struct {
	Current  string  `json:"currentGuessBuffer"` // in-progress guess, 0–5 uppercase letters
	Guesses  []Guess `json:"guesses"`            // committed rows, oldest first
	Status   Status  `json:"status"`
	Letters  Letters `json:"letterStates"`
	Answer   string  `json:"secretWord"`  // uppercase
	Date     string  `json:"sessionDate"` // YYYY-MM-DD the session was created for
	Practice bool    `json:"isPracticeMode"`
}

// New starts a session in StatusPlaying for answer.
func New(answer, date string, mode Mode) *Session {
	return &Session{
		Guesses:  []Guess{},
		Status:   StatusPlaying,
		Letters:  Letters{},
		Answer:   strings.ToUpper(answer),
		Date:     date,
		Practice: mode == ModePractice,
	}
}

// Mode reports whether this is a daily or practice session.
func (s *Session) Mode() Mode {
	if s.Practice {
		return ModePractice
	}
	return ModeDaily
}

// AppendLetter adds c to the buffer. Returns false when the game is over,
// the buffer is full, or c is not a letter.
func (s *Session) AppendLetter(c rune) bool {
	if s.Status != StatusPlaying || len(s.Current) >= words.Length {
		return false
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return false
	}
	s.Current += string(c)
	return true
}

// RemoveLetter drops the last buffered letter.
func (s *Session) RemoveLetter() bool {
	if s.Status != StatusPlaying || len(s.Current) == 0 {
		return false
	}
	s.Current = s.Current[:len(s.Current)-1]
	return true
}

// Submit validates the buffer and commits it as a guess.
//
// Checks, in order: the game is playing, the buffer has 5 letters, the word
// was not guessed before, the word is in dict. The first failing check is
// returned and nothing changes.
func (s *Session) Submit(dict Dictionary) (Guess, error) {
	if s.Status != StatusPlaying {
		return Guess{}, ErrNotPlaying
	}
	word := strings.ToUpper(s.Current)
	if len(word) != words.Length {
		return Guess{}, ErrWrongLength
	}
	if s.HasGuessed(word) {
		return Guess{}, ErrDuplicateGuess
	}
	if !dict.IsAllowed(word) {
		return Guess{}, ErrNotInWordList
	}

	g := Guess{Word: word, Tiles: Evaluate(word, s.Answer)}
	s.Guesses = append(s.Guesses, g)
	s.Letters = Fold(s.Letters, g.Tiles)
	s.Current = ""

	switch {
	case g.Solved():
		s.Status = StatusWon
	case len(s.Guesses) >= MaxGuesses:
		s.Status = StatusLost
	}
	return g, nil
}

// HasGuessed reports whether word is already a committed guess.
func (s *Session) HasGuessed(word string) bool {
	word = strings.ToUpper(word)
	for _, g := range s.Guesses {
		if g.Word == word {
			return true
		}
	}
	return false
}

// Remaining is the number of guesses left.
func (s *Session) Remaining() int { return MaxGuesses - len(s.Guesses) }

// Clone returns a copy that shares no mutable state with s. Guess tiles are
// immutable and are shared.
func (s *Session) Clone() *Session {
	c := *s
	c.Guesses = append([]Guess{}, s.Guesses...)
	c.Letters = make(Letters, len(s.Letters))
	for l, m := range s.Letters {
		c.Letters[l] = m
	}
	return &c
}
