package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

var dict = words.MustNew(
	[]string{"crane", "slate", "speed", "erase", "adieu"},
	[]string{"plumb", "house", "thumb", "gloom", "fjord", "pygmy", "crank"},
)

func typeWord(t *testing.T, s *Session, w string) {
	t.Helper()
	for _, c := range w {
		s.AppendLetter(c)
	}
}

func snapshot(t *testing.T, s *Session) string {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestAppendAndRemove(t *testing.T) {
	s := New("crane", "2024-01-01", ModeDaily)
	for _, c := range "abcdef" {
		s.AppendLetter(c)
	}
	if s.Current != "ABCDE" {
		t.Fatalf("buffer = %q, want ABCDE", s.Current)
	}
	if s.AppendLetter('X') {
		t.Fatalf("append past 5 letters should be a no-op")
	}
	if s.RemoveLetter(); s.Current != "ABCD" {
		t.Fatalf("buffer = %q after remove", s.Current)
	}
	if s.AppendLetter('1') || s.AppendLetter(' ') {
		t.Fatalf("non-letters must be ignored")
	}
	for i := 0; i < 4; i++ {
		s.RemoveLetter()
	}
	if s.RemoveLetter() {
		t.Fatalf("remove on empty buffer should be a no-op")
	}
}

func TestSubmitWinsCraneScenario(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModeDaily)

	typeWord(t, s, "slate")
	g, err := s.Submit(dict)
	if err != nil {
		t.Fatalf("submit SLATE: %v", err)
	}
	if got := marks(g.Tiles); got != "AACAC" {
		t.Fatalf("SLATE tiles = %s", got)
	}
	if s.Status != StatusPlaying || s.Current != "" {
		t.Fatalf("after SLATE: status=%s buffer=%q", s.Status, s.Current)
	}
	if s.Letters["S"] != MarkAbsent || s.Letters["A"] != MarkCorrect {
		t.Fatalf("letters = %v", s.Letters)
	}

	typeWord(t, s, "crane")
	if _, err := s.Submit(dict); err != nil {
		t.Fatalf("submit CRANE: %v", err)
	}
	if s.Status != StatusWon || len(s.Guesses) != 2 {
		t.Fatalf("status=%s guesses=%d, want won/2", s.Status, len(s.Guesses))
	}

	if s.AppendLetter('A') || s.RemoveLetter() {
		t.Fatalf("mutations after win must be no-ops")
	}
	if _, err := s.Submit(dict); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("submit after win: %v", err)
	}
}

func TestSubmitRejectionsLeaveStateUnchanged(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModeDaily)
	typeWord(t, s, "slate")
	if _, err := s.Submit(dict); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"wrong length", "cat", ErrWrongLength},
		{"duplicate", "slate", ErrDuplicateGuess},
		{"not in word list", "zzzzz", ErrNotInWordList},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for s.RemoveLetter() {
			}
			typeWord(t, s, c.input)
			before := snapshot(t, s)
			_, err := s.Submit(dict)
			if !errors.Is(err, c.want) || !errors.Is(err, ErrRejected) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if after := snapshot(t, s); after != before {
				t.Fatalf("state changed:\n%s\n%s", before, after)
			}
		})
	}
}

func TestSubmitChecksDuplicateBeforeDictionary(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModePractice)
	typeWord(t, s, "slate")
	if _, err := s.Submit(dict); err != nil {
		t.Fatal(err)
	}
	typeWord(t, s, "slate")
	if _, err := s.Submit(words.MustNew([]string{"crane"}, nil)); !errors.Is(err, ErrDuplicateGuess) {
		t.Fatalf("err = %v, want duplicate", err)
	}
}

func TestLostOnlyAfterSixthGuess(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModeDaily)
	misses := []string{"slate", "plumb", "house", "thumb", "gloom", "fjord"}
	for i, w := range misses {
		typeWord(t, s, w)
		if _, err := s.Submit(dict); err != nil {
			t.Fatalf("guess %d (%s): %v", i+1, w, err)
		}
		want := StatusPlaying
		if i == len(misses)-1 {
			want = StatusLost
		}
		if s.Status != want {
			t.Fatalf("after guess %d status = %s, want %s", i+1, s.Status, want)
		}
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %d", s.Remaining())
	}
}

func TestWinOnSixthGuessIsWin(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModeDaily)
	for _, w := range []string{"slate", "plumb", "house", "thumb", "gloom", "crane"} {
		typeWord(t, s, w)
		if _, err := s.Submit(dict); err != nil {
			t.Fatal(err)
		}
	}
	if s.Status != StatusWon {
		t.Fatalf("status = %s, want won", s.Status)
	}
}

func TestModeAndParse(t *testing.T) {
	if New("crane", "", ModePractice).Mode() != ModePractice {
		t.Fatalf("practice mode lost")
	}
	if New("crane", "", ModeDaily).Mode() != ModeDaily {
		t.Fatalf("daily mode lost")
	}
	if m, err := ParseMode("practice"); err != nil || m != ModePractice {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("weekly"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New("CRANE", "2024-01-01", ModeDaily)
	typeWord(t, s, "slate")
	if _, err := s.Submit(dict); err != nil {
		t.Fatal(err)
	}
	c := s.Clone()
	typeWord(t, s, "crane")
	if _, err := s.Submit(dict); err != nil {
		t.Fatal(err)
	}
	if len(c.Guesses) != 1 || c.Status != StatusPlaying || c.Letters["C"] != MarkEmpty {
		t.Fatalf("clone changed with original: %+v", c)
	}
}
