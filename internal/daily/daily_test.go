package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

var testList = words.MustNew([]string{"cigar", "rebut", "sissy", "humph", "awake"}, nil)

func TestDayNumber(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{Epoch, 0},
		{time.Date(2021, 6, 19, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2021, 6, 20, 0, 0, 1, 0, time.UTC), 1},
		{time.Date(2021, 6, 18, 12, 0, 0, 0, time.UTC), -1},
		{time.Date(2022, 6, 19, 0, 0, 0, 0, time.UTC), 365},
	}
	for _, c := range cases {
		if got := DayNumber(c.date); got != c.want {
			t.Errorf("DayNumber(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestDayNumberIgnoresZone(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*3600)
	late := time.Date(2021, 6, 20, 23, 30, 0, 0, loc)
	if got := DayNumber(late); got != 1 {
		t.Fatalf("DayNumber = %d, want 1 (calendar date in its own zone)", got)
	}
}

func TestWordIndexWrapsNegative(t *testing.T) {
	for d := -12; d <= 12; d++ {
		date := Epoch.AddDate(0, 0, d)
		i := WordIndex(date, 5)
		if i < 0 || i >= 5 {
			t.Fatalf("WordIndex(day %d) = %d out of range", d, i)
		}
		if want := ((d % 5) + 5) % 5; i != want {
			t.Fatalf("WordIndex(day %d) = %d, want %d", d, i, want)
		}
	}
	if WordIndex(Epoch, 0) != 0 {
		t.Fatalf("empty catalog must map to 0")
	}
}

func TestSelectorDeterministic(t *testing.T) {
	clk := At(2024, time.March, 3)
	s := NewSelector(testList, clk)

	d1, w1 := s.Today()
	d2, w2 := s.Today()
	if d1 != d2 || w1 != w2 {
		t.Fatalf("same date gave (%s,%s) and (%s,%s)", d1, w1, d2, w2)
	}
	if d1 != "2024-03-03" {
		t.Fatalf("date key = %s", d1)
	}

	// Time of day does not matter.
	noon := time.Date(2024, time.March, 3, 12, 34, 56, 0, time.UTC)
	if got := s.Word(noon); got != w1 {
		t.Fatalf("Word(noon) = %s, want %s", got, w1)
	}

	i := WordIndex(clk.Today(), testList.Len())
	clk.Add(1)
	_, next := s.Today()
	if w1 != testList.At(i) || next != testList.At((i+1)%testList.Len()) {
		t.Fatalf("consecutive days: %s,%s want %s,%s", w1, next, testList.At(i), testList.At((i+1)%testList.Len()))
	}
}

func TestSelectorFarDates(t *testing.T) {
	s := NewSelector(testList, At(1900, time.January, 1))
	_, w := s.Today()
	if !testList.IsAnswer(w) {
		t.Fatalf("pre-epoch word %q not an answer", w)
	}
	if w := s.Word(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)); !testList.IsAnswer(w) {
		t.Fatalf("far-future word %q not an answer", w)
	}
	if s.DayNumber() >= 0 {
		t.Fatalf("pre-epoch day number should be negative")
	}
}

func TestSelectorRandom(t *testing.T) {
	s := NewSelector(testList, At(2024, 1, 1))
	for i := 0; i < 10; i++ {
		if w := s.Random(); !testList.IsAnswer(w) {
			t.Fatalf("Random() = %q", w)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 2 {
		t.Fatalf("DaysBetween = %d, want 2", got)
	}
	if got := DaysBetween(b, a); got != -2 {
		t.Fatalf("DaysBetween reversed = %d, want -2", got)
	}
	k, err := ParseDateKey(DateKey(a))
	if err != nil || DaysBetween(a, k) != 0 {
		t.Fatalf("ParseDateKey round trip: %v %v", k, err)
	}
}
