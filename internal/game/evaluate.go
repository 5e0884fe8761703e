package game

import "strings"

// Evaluate scores guess against target with the two-pass Wordle algorithm.
//
// Pass 1 marks exact matches correct and consumes one copy of that letter
// from the target's letter counts. Pass 2 walks the remaining positions left
// to right and marks a letter present while unconsumed copies remain,
// absent otherwise. Exact matches therefore always win over misplaced ones,
// and a letter repeated in the guess is only marked present as many times as
// the target has spare copies.
//
// Both words are compared case-insensitively; tiles carry uppercase letters.
func Evaluate(guess, target string) []Tile {
	g := []rune(strings.ToUpper(guess))
	a := []rune(strings.ToUpper(target))

	tiles := make([]Tile, len(g))
	remaining := make(map[rune]int, len(a))
	for _, r := range a {
		remaining[r]++
	}

	for i, r := range g {
		tiles[i].Letter = string(r)
		if i < len(a) && r == a[i] {
			tiles[i].State = MarkCorrect
			remaining[r]--
		}
	}

	for i, r := range g {
		if tiles[i].State == MarkCorrect {
			continue
		}
		if remaining[r] > 0 {
			tiles[i].State = MarkPresent
			remaining[r]--
		} else {
			tiles[i].State = MarkAbsent
		}
	}
	return tiles
}
