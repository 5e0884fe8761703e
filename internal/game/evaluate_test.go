package game

import (
	"strings"
	"testing"
)

// marks renders tiles as a compact string: C=correct, P=present, A=absent.
func marks(tiles []Tile) string {
	var b strings.Builder
	for _, t := range tiles {
		switch t.State {
		case MarkCorrect:
			b.WriteByte('C')
		case MarkPresent:
			b.WriteByte('P')
		case MarkAbsent:
			b.WriteByte('A')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name, guess, target, want string
	}{
		{"exact", "CRANE", "CRANE", "CCCCC"},
		{"no shared letters", "PLUMB", "CRANE", "AAAAA"},
		{"repeated letters consume multiset", "ERASE", "SPEED", "PAAPP"},
		{"exact match beats earlier misplaced copy", "EERIE", "CRANE", "AAPAC"},
		{"excess repeats are absent", "BOBBY", "ABBEY", "PACAC"},
		{"shared positions", "SLATE", "CRANE", "AACAC"},
		{"anagram", "NACRE", "CRANE", "PPPPC"},
		{"case insensitive", "crane", "CrAnE", "CCCCC"},
		{"single spare copy goes left to right", "LLAMA", "HELLO", "PPAAA"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Evaluate(c.guess, c.target)
			if len(got) != 5 {
				t.Fatalf("len = %d", len(got))
			}
			if m := marks(got); m != c.want {
				t.Fatalf("Evaluate(%s, %s) = %s, want %s", c.guess, c.target, m, c.want)
			}
			for i, tile := range got {
				if tile.Letter != strings.ToUpper(c.guess[i:i+1]) {
					t.Fatalf("tile %d letter = %q", i, tile.Letter)
				}
			}
		})
	}
}

func TestEvaluatePresentNeverExceedsTargetCount(t *testing.T) {
	targets := []string{"SPEED", "ABBEY", "EERIE", "SISSY", "CRANE"}
	guesses := []string{"EEEEE", "SSSSS", "BBBBB", "ERASE", "ESSES", "YEAST"}
	for _, target := range targets {
		for _, guess := range guesses {
			tiles := Evaluate(guess, target)
			used := map[string]int{}
			for _, tile := range tiles {
				if tile.State == MarkCorrect || tile.State == MarkPresent {
					used[tile.Letter]++
				}
			}
			for l, n := range used {
				if have := strings.Count(target, l); n > have {
					t.Fatalf("%s vs %s: %d marks for %s, target has %d", guess, target, n, l, have)
				}
			}
		}
	}
}
