// internal/play/controller.go
//
// Controller owns a player's daily and practice sessions and is the single
// entry point presentation layers call.
// Responsibilities:
//   - Create/restore sessions (daily word from the selector, random word for
//     practice) and roll the daily session over at midnight.
//   - Apply player actions (letters, backspace, submit, raw key names).
//   - Persist every change through profile.Repo (fire-and-forget); an
//     untouched new session is never written.
//   - Record statistics once when a daily session finishes.
//   - Theme preference and share text.
//
// All methods are serialized by one mutex, so each action runs to completion
// before the next starts. Methods return snapshots, never live sessions.

package play

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/input"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/profile"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/share"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/stats"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
)

// ErrNotPractice is returned when resetting a daily session.
var ErrNotPractice = errors.New("only practice games can be reset")

// Controller is one player's game state.
type Controller struct {
	mu       sync.Mutex
	dict     game.Dictionary
	selector *daily.Selector
	repo     *profile.Repo
	sessions map[game.Mode]*game.Session
}

// New builds a controller over a dictionary, a word selector, and the
// player's persisted records.
func New(dict game.Dictionary, sel *daily.Selector, repo *profile.Repo) *Controller {
	return &Controller{
		dict:     dict,
		selector: sel,
		repo:     repo,
		sessions: make(map[game.Mode]*game.Session),
	}
}

func (c *Controller) today() string {
	return daily.DateKey(c.selector.Clock().Today())
}

// session returns the live session for mode, restoring or creating it.
// A new session is not stored until its first change, so players who only
// look at the board leave nothing behind. Callers hold c.mu.
func (c *Controller) session(ctx context.Context, mode game.Mode) *game.Session {
	today := c.today()
	if s, ok := c.sessions[mode]; ok {
		if mode == game.ModePractice || s.Date == today {
			return s
		}
	}
	if s := c.repo.LoadSession(ctx, mode, today); s != nil {
		c.sessions[mode] = s
		return s
	}

	var s *game.Session
	if mode == game.ModePractice {
		s = game.New(c.selector.Random(), today, game.ModePractice)
	} else {
		date, word := c.selector.Today()
		s = game.New(word, date, game.ModeDaily)
	}
	log.Debug().Str("mode", string(mode)).Str("date", s.Date).Msg("new session")
	c.sessions[mode] = s
	return s
}

// Session returns a snapshot of the current session for mode.
func (c *Controller) Session(ctx context.Context, mode game.Mode) *game.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(ctx, mode).Clone()
}

// Type appends a letter to the guess buffer.
func (c *Controller) Type(ctx context.Context, mode game.Mode, letter rune) (*game.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(ctx, mode)
	ok := s.AppendLetter(letter)
	if ok {
		c.repo.SaveSession(ctx, s)
	}
	return s.Clone(), ok
}

// Backspace removes the last letter from the guess buffer.
func (c *Controller) Backspace(ctx context.Context, mode game.Mode) (*game.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(ctx, mode)
	ok := s.RemoveLetter()
	if ok {
		c.repo.SaveSession(ctx, s)
	}
	return s.Clone(), ok
}

// Submit commits the guess buffer. A rejection (errors.Is game.ErrRejected)
// leaves the session unchanged.
func (c *Controller) Submit(ctx context.Context, mode game.Mode) (*game.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(ctx, mode)
	if _, err := s.Submit(c.dict); err != nil {
		return s.Clone(), err
	}
	c.repo.SaveSession(ctx, s)
	if s.Status.Finished() && mode == game.ModeDaily {
		c.recordStats(ctx, s)
	}
	return s.Clone(), nil
}

// recordStats folds a finished daily session into the statistics.
func (c *Controller) recordStats(ctx context.Context, s *game.Session) {
	cur := c.repo.LoadStats(ctx)
	next, ok := cur.Record(stats.Result{
		Date:    s.Date,
		Won:     s.Status == game.StatusWon,
		Guesses: len(s.Guesses),
	}, c.repo.LastPlayed(ctx))
	if !ok {
		return
	}
	c.repo.SaveStats(ctx, next)
	c.repo.SetLastPlayed(ctx, s.Date)
	log.Info().
		Str("date", s.Date).
		Str("status", string(s.Status)).
		Int("guesses", len(s.Guesses)).
		Int("streak", next.CurrentStreak).
		Msg("daily result recorded")
}

// Outcome describes what a key press did.
type Outcome struct {
	Action  input.Action
	Changed bool
	Session *game.Session
}

// Press applies a raw key name (physical or on-screen). Ignored keys return
// Action input.None. A rejected submit returns its error.
func (c *Controller) Press(ctx context.Context, mode game.Mode, key string) (Outcome, error) {
	k := input.Parse(key)
	out := Outcome{Action: k.Action}
	var err error
	switch k.Action {
	case input.Append:
		out.Session, out.Changed = c.Type(ctx, mode, k.Letter)
	case input.Remove:
		out.Session, out.Changed = c.Backspace(ctx, mode)
	case input.Submit:
		out.Session, err = c.Submit(ctx, mode)
		out.Changed = err == nil
	default:
		out.Session = c.Session(ctx, mode)
	}
	return out, err
}

// Reset replaces the practice session with a fresh one.
func (c *Controller) Reset(ctx context.Context, mode game.Mode) (*game.Session, error) {
	if mode != game.ModePractice {
		return nil, ErrNotPractice
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := game.New(c.selector.Random(), c.today(), game.ModePractice)
	c.sessions[game.ModePractice] = s
	c.repo.SaveSession(ctx, s)
	return s.Clone(), nil
}

// Stats returns the saved statistics.
func (c *Controller) Stats(ctx context.Context) stats.Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repo.LoadStats(ctx)
}

// ResetStats clears statistics and the last played date.
func (c *Controller) ResetStats(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repo.ResetStats(ctx)
}

// Share renders the share text for mode's current session.
func (c *Controller) Share(ctx context.Context, mode game.Mode) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(ctx, mode)
	label := share.PracticeLabel
	if mode == game.ModeDaily {
		day := c.selector.DayNumber()
		if d, err := daily.ParseDateKey(s.Date); err == nil {
			day = daily.DayNumber(d)
		}
		label = share.DailyLabel(day)
	}
	return share.Text(label, s)
}

// Theme returns the saved or preferred theme.
func (c *Controller) Theme(ctx context.Context) theme.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repo.Theme(ctx)
}

// SetTheme saves t.
func (c *Controller) SetTheme(ctx context.Context, t theme.Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repo.SetTheme(ctx, t)
}

// ToggleTheme flips and saves the theme.
func (c *Controller) ToggleTheme(ctx context.Context) theme.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.repo.Theme(ctx).Toggle()
	c.repo.SetTheme(ctx, t)
	return t
}
