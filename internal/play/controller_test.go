package play

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/input"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/profile"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

var list = words.MustNew(
	[]string{"crane", "slate", "speed", "erase", "adieu"},
	[]string{"plumb", "house", "thumb", "gloom", "fjord", "pygmy"},
)

type fixture struct {
	c     *Controller
	clock *daily.Fixed
	st    store.Storage
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clock := daily.At(2024, 3, 10)
	st := store.NewMemory()
	c := New(list, daily.NewSelector(list, clock), profile.NewRepo(st, theme.Fixed(theme.Light)))
	return fixture{c: c, clock: clock, st: st}
}

func (f fixture) guess(t *testing.T, mode game.Mode, word string) (*game.Session, error) {
	t.Helper()
	ctx := context.Background()
	for f.c.Session(ctx, mode).Current != "" {
		f.c.Backspace(ctx, mode)
	}
	for _, r := range word {
		f.c.Type(ctx, mode, r)
	}
	return f.c.Submit(ctx, mode)
}

// miss returns n allowed words other than answer.
func miss(answer string, n int) []string {
	out := []string{}
	for _, w := range []string{"PLUMB", "HOUSE", "THUMB", "GLOOM", "FJORD", "PYGMY", "CRANE", "SLATE"} {
		if w != answer && len(out) < n {
			out = append(out, w)
		}
	}
	return out
}

func TestDailySessionUsesWordOfTheDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.c.Session(ctx, game.ModeDaily)
	date, word := daily.NewSelector(list, f.clock).Today()
	if s.Answer != word || s.Date != date || s.Practice {
		t.Fatalf("session = %+v, want %s on %s", s, word, date)
	}
	if again := f.c.Session(ctx, game.ModeDaily); again.Answer != word {
		t.Fatalf("daily word changed within the day")
	}
}

func TestWinRecordsStatsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	answer := f.c.Session(ctx, game.ModeDaily).Answer

	if _, err := f.guess(t, game.ModeDaily, miss(answer, 1)[0]); err != nil {
		t.Fatal(err)
	}
	s, err := f.guess(t, game.ModeDaily, answer)
	if err != nil {
		t.Fatal(err)
	}
	if s.Status != game.StatusWon {
		t.Fatalf("status = %s", s.Status)
	}
	st := f.c.Stats(ctx)
	if st.GamesPlayed != 1 || st.GamesWon != 1 || st.CurrentStreak != 1 || st.GuessDistribution[1] != 1 {
		t.Fatalf("stats = %+v", st)
	}

	// A second controller over the same storage restores the finished game
	// and must not count it again.
	c2 := New(list, daily.NewSelector(list, f.clock), profile.NewRepo(f.st, nil))
	if got := c2.Session(ctx, game.ModeDaily); got.Status != game.StatusWon {
		t.Fatalf("restored status = %s", got.Status)
	}
	if _, err := c2.Submit(ctx, game.ModeDaily); !errors.Is(err, game.ErrNotPlaying) {
		t.Fatalf("submit on finished game: %v", err)
	}
	if c2.Stats(ctx).GamesPlayed != 1 {
		t.Fatalf("result counted twice")
	}
}

func TestLossResetsStreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	answer := f.c.Session(ctx, game.ModeDaily).Answer
	if _, err := f.guess(t, game.ModeDaily, answer); err != nil {
		t.Fatal(err)
	}

	f.clock.Add(1)
	answer = f.c.Session(ctx, game.ModeDaily).Answer
	var s *game.Session
	for _, w := range miss(answer, 6) {
		var err error
		if s, err = f.guess(t, game.ModeDaily, w); err != nil {
			t.Fatalf("guess %s: %v", w, err)
		}
	}
	if s.Status != game.StatusLost {
		t.Fatalf("status = %s", s.Status)
	}
	st := f.c.Stats(ctx)
	if st.GamesPlayed != 2 || st.GamesWon != 1 || st.CurrentStreak != 0 || st.MaxStreak != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestDailyRollsOverAtMidnight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.c.Type(ctx, game.ModeDaily, 'a')
	first := f.c.Session(ctx, game.ModeDaily)

	f.clock.Add(1)
	next := f.c.Session(ctx, game.ModeDaily)
	if next.Date == first.Date || next.Current != "" {
		t.Fatalf("session did not roll over: %+v", next)
	}
}

func TestSessionStoredOnFirstChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, mode := range []game.Mode{game.ModeDaily, game.ModePractice} {
		f.c.Session(ctx, mode)
		f.c.Backspace(ctx, mode)
		if _, ok, _ := f.st.Get(ctx, profile.SessionKey(mode)); ok {
			t.Fatalf("%s session stored before any change", mode)
		}
	}

	f.c.Type(ctx, game.ModeDaily, 'p')
	if _, ok, _ := f.st.Get(ctx, profile.SessionKey(game.ModeDaily)); !ok {
		t.Fatalf("daily session not stored after first letter")
	}
	again := New(list, daily.NewSelector(list, f.clock), profile.NewRepo(f.st, theme.Fixed(theme.Light)))
	if got := again.Session(ctx, game.ModeDaily); got.Current != "P" {
		t.Fatalf("restored buffer = %q", got.Current)
	}
}

func TestPracticeDoesNotTouchStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	answer := f.c.Session(ctx, game.ModePractice).Answer
	if s, err := f.guess(t, game.ModePractice, answer); err != nil || s.Status != game.StatusWon {
		t.Fatalf("practice win: %v", err)
	}
	if f.c.Stats(ctx).GamesPlayed != 0 {
		t.Fatalf("practice game counted in stats")
	}

	s, err := f.c.Reset(ctx, game.ModePractice)
	if err != nil || s.Status != game.StatusPlaying || len(s.Guesses) != 0 {
		t.Fatalf("reset = %+v, %v", s, err)
	}
	if _, err := f.c.Reset(ctx, game.ModeDaily); !errors.Is(err, ErrNotPractice) {
		t.Fatalf("daily reset err = %v", err)
	}
}

func TestPressDispatchesKeys(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.c.Press(ctx, game.ModePractice, "q")
	if err != nil || out.Action != input.Append || !out.Changed || out.Session.Current != "Q" {
		t.Fatalf("press q = %+v, %v", out, err)
	}
	out, _ = f.c.Press(ctx, game.ModePractice, "DELETE")
	if out.Action != input.Remove || out.Session.Current != "" {
		t.Fatalf("press DELETE = %+v", out)
	}
	out, _ = f.c.Press(ctx, game.ModePractice, "F5")
	if out.Action != input.None || out.Changed {
		t.Fatalf("press F5 = %+v", out)
	}
	_, err = f.c.Press(ctx, game.ModePractice, "Enter")
	if !errors.Is(err, game.ErrWrongLength) {
		t.Fatalf("press Enter on empty buffer: %v", err)
	}
}

func TestShareText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	answer := f.c.Session(ctx, game.ModeDaily).Answer
	if _, err := f.guess(t, game.ModeDaily, answer); err != nil {
		t.Fatal(err)
	}
	text := f.c.Share(ctx, game.ModeDaily)
	want := fmt.Sprintf("Wordle %d 1/6", daily.DayNumber(f.clock.Today()))
	if !strings.HasPrefix(text, want) || !strings.Contains(text, "🟩🟩🟩🟩🟩") {
		t.Fatalf("share = %q, want prefix %q", text, want)
	}
	if !strings.HasPrefix(f.c.Share(ctx, game.ModePractice), "Wordle Practice X/6") {
		t.Fatalf("practice share = %q", f.c.Share(ctx, game.ModePractice))
	}
}

func TestThemeToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if f.c.Theme(ctx) != theme.Light {
		t.Fatalf("default theme = %s", f.c.Theme(ctx))
	}
	if f.c.ToggleTheme(ctx) != theme.Dark || f.c.Theme(ctx) != theme.Dark {
		t.Fatalf("toggle did not persist")
	}
	f.c.SetTheme(ctx, theme.Light)
	if f.c.Theme(ctx) != theme.Light {
		t.Fatalf("SetTheme ignored")
	}
}
