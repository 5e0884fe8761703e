// internal/words/words.go
//
// Word source for the game engine.
//
// Responsibilities:
//   - Hold the ordered answer list (daily/practice secrets) and the guessable
//     set (answers ∪ extra allowed words).
//   - Load lists from environment-provided files or fall back to the embedded
//     assets.
//   - Supply lookups: IsAllowed, IsAnswer, At, Random, Stats.
//
// Loading behavior (Load):
//  1. If both answersPath and allowedPath are set, read answers from the
//     first and extra guesses from the second.
//  2. If only allowedPath is set, use that file for both lists.
//  3. Otherwise use the embedded assets.
//
// Constraints:
//   - Words are exactly 5 ASCII letters; anything else is dropped on load.
//   - Lists are normalized to uppercase.
//   - Answer order is preserved (the daily selector indexes into it).

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
)

// Length is the number of letters in every word.
const Length = 5

// ErrEmpty is returned when a list ends up with no answers.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable answer list plus guessable set.
type List struct {
	answers    []string            // canonical answers, file order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ extra guesses
}

// New builds a List from raw answers and extra allowed words.
// Invalid entries are dropped, duplicate answers keep their first position,
// and every answer is guessable.
func New(answers, allowed []string) (*List, error) {
	l := &List{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range normalize(answers) {
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// MustNew is New for fixed lists known to be valid (tests, defaults).
func MustNew(answers, allowed []string) *List {
	l, err := New(answers, allowed)
	if err != nil {
		panic(err)
	}
	return l
}

// Load reads the lists from files when configured, otherwise from the
// embedded assets.
func Load(answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}
	return New(ansList, allowList)
}

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// Default returns the embedded lists, loaded once.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		defaultList, defaultErr = Load("", "")
	})
	return defaultList, defaultErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalize uppercases, trims, and keeps only valid 5-letter words.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.ToUpper(strings.TrimSpace(w))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsWord reports whether s is exactly Length uppercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Len is the number of answers.
func (l *List) Len() int { return len(l.answers) }

// At returns the i-th answer; callers keep i in [0, Len()).
func (l *List) At(i int) string { return l.answers[i] }

// Answers returns a copy of the answer list.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToUpper(w)]
	return ok
}

// Random returns a cryptographically random answer.
func (l *List) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[n.Int64()]
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
