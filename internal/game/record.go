package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// ErrBadRecord marks a persisted session that cannot be trusted.
var ErrBadRecord = errors.New("game: malformed session record")

// Encode serializes s as a session record.
func Encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses and validates a session record.
func Decode(b []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Guesses == nil {
		s.Guesses = []Guess{}
	}
	if s.Letters == nil {
		s.Letters = Letters{}
	}
	return &s, nil
}

// Validate checks that s is internally consistent: a valid secret, a
// buffer of at most five letters, guesses whose tiles match a re-evaluation
// against the secret, and a status that agrees with the history.
func (s *Session) Validate() error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrBadRecord, fmt.Sprintf(format, a...))
	}
	if !words.IsWord(s.Answer) {
		return bad("secret %q", s.Answer)
	}
	if !s.Status.Valid() {
		return bad("status %q", s.Status)
	}
	if len(s.Current) > words.Length {
		return bad("buffer %q", s.Current)
	}
	for i := 0; i < len(s.Current); i++ {
		if c := s.Current[i]; c < 'A' || c > 'Z' {
			return bad("buffer %q", s.Current)
		}
	}
	if len(s.Guesses) > MaxGuesses {
		return bad("%d guesses", len(s.Guesses))
	}
	solved := false
	for i, g := range s.Guesses {
		if solved {
			return bad("guess after win")
		}
		if !words.IsWord(g.Word) {
			return bad("guess %d word %q", i, g.Word)
		}
		if !reflect.DeepEqual(g.Tiles, Evaluate(g.Word, s.Answer)) {
			return bad("guess %d tiles", i)
		}
		solved = g.Solved()
	}
	switch s.Status {
	case StatusWon:
		if !solved {
			return bad("won without a solved guess")
		}
	case StatusLost:
		if solved || len(s.Guesses) != MaxGuesses {
			return bad("lost with %d guesses", len(s.Guesses))
		}
	case StatusPlaying:
		if solved || len(s.Guesses) >= MaxGuesses {
			return bad("playing after game end")
		}
	}
	for l, m := range s.Letters {
		if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' || m > MarkCorrect {
			return bad("letter state %q", l)
		}
	}
	return nil
}
