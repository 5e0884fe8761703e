package game

// Letters maps an uppercase letter to the best mark seen for it so far.
type Letters map[string]Mark

// Fold merges tiles into cur and returns the result; cur is not modified.
// Each letter keeps the maximum of its previous and new mark, so a letter
// never regresses from correct, and never from present back to absent.
func Fold(cur Letters, tiles []Tile) Letters {
	next := make(Letters, len(cur)+len(tiles))
	for l, m := range cur {
		next[l] = m
	}
	for _, t := range tiles {
		if t.Letter == "" || t.State == MarkEmpty {
			continue
		}
		next[t.Letter] = next[t.Letter].Upgrade(t.State)
	}
	return next
}

// Get returns the mark for letter, MarkEmpty when unseen.
func (l Letters) Get(letter string) Mark { return l[letter] }
