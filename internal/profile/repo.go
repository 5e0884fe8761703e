// internal/profile/repo.go
//
// Typed records for one player profile on top of a Storage.
//
// Records:
//   - wordle-game-state        daily session (discarded when not from today)
//   - wordle-practice-state    practice session
//   - wordle-statistics        aggregate statistics
//   - wordle-last-played-date  date key of the last recorded daily game
//   - wordle-theme             "light" | "dark"
//
// Loads never fail: missing, corrupt, or stale records read as absent (or
// defaults). Saves never fail either: errors are logged and gameplay
// continues with the in-memory state.

package profile

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/stats"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
)

const (
	KeyDailySession    = "wordle-game-state"
	KeyPracticeSession = "wordle-practice-state"
	KeyStats           = "wordle-statistics"
	KeyLastPlayed      = "wordle-last-played-date"
	KeyTheme           = "wordle-theme"
)

// SessionKey is the storage key for a mode's session record.
func SessionKey(m game.Mode) string {
	if m == game.ModePractice {
		return KeyPracticeSession
	}
	return KeyDailySession
}

// Repo reads and writes one profile's records.
type Repo struct {
	st   store.Storage
	pref theme.Preference
}

// NewRepo wraps st. pref supplies the theme when none is saved.
func NewRepo(st store.Storage, pref theme.Preference) *Repo {
	if pref == nil {
		pref = theme.Fixed(theme.Light)
	}
	return &Repo{st: st, pref: pref}
}

func (r *Repo) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := r.st.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		return "", false
	}
	return v, ok
}

func (r *Repo) set(ctx context.Context, key, value string) {
	if err := r.st.Set(ctx, key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage write failed")
	}
}

func (r *Repo) remove(ctx context.Context, key string) {
	if err := r.st.Remove(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage remove failed")
	}
}

// LoadSession returns the saved session for mode, or nil when there is none
// usable. A daily session from any date other than today is stale.
func (r *Repo) LoadSession(ctx context.Context, mode game.Mode, today string) *game.Session {
	key := SessionKey(mode)
	raw, ok := r.get(ctx, key)
	if !ok {
		return nil
	}
	s, err := game.Decode([]byte(raw))
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("discarding session record")
		return nil
	}
	if s.Mode() != mode {
		log.Debug().Str("key", key).Str("mode", string(s.Mode())).Msg("session record for wrong mode")
		return nil
	}
	if mode == game.ModeDaily && s.Date != today {
		return nil
	}
	return s
}

// SaveSession stores s under its mode's key.
func (r *Repo) SaveSession(ctx context.Context, s *game.Session) {
	b, err := game.Encode(s)
	if err != nil {
		log.Warn().Err(err).Msg("encode session")
		return
	}
	r.set(ctx, SessionKey(s.Mode()), string(b))
}

// ClearSession drops the saved session for mode.
func (r *Repo) ClearSession(ctx context.Context, mode game.Mode) {
	r.remove(ctx, SessionKey(mode))
}

// LoadStats returns saved statistics, or zero statistics when absent or
// malformed.
func (r *Repo) LoadStats(ctx context.Context) stats.Statistics {
	raw, ok := r.get(ctx, KeyStats)
	if !ok {
		return stats.Statistics{}
	}
	var s stats.Statistics
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Debug().Err(err).Msg("discarding statistics record")
		return stats.Statistics{}
	}
	if err := s.Validate(); err != nil {
		log.Debug().Err(err).Msg("discarding statistics record")
		return stats.Statistics{}
	}
	return s
}

// SaveStats stores s.
func (r *Repo) SaveStats(ctx context.Context, s stats.Statistics) {
	b, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("encode statistics")
		return
	}
	r.set(ctx, KeyStats, string(b))
}

// LastPlayed is the date key of the last recorded daily game, "" if none.
func (r *Repo) LastPlayed(ctx context.Context) string {
	v, _ := r.get(ctx, KeyLastPlayed)
	return v
}

func (r *Repo) SetLastPlayed(ctx context.Context, date string) {
	r.set(ctx, KeyLastPlayed, date)
}

// ResetStats clears statistics and the last played date.
func (r *Repo) ResetStats(ctx context.Context) {
	r.remove(ctx, KeyStats)
	r.remove(ctx, KeyLastPlayed)
}

// Theme returns the saved theme or the environment's preference.
func (r *Repo) Theme(ctx context.Context) theme.Theme {
	if v, ok := r.get(ctx, KeyTheme); ok {
		if t, ok := theme.Parse(v); ok {
			return t
		}
	}
	return r.pref()
}

func (r *Repo) SetTheme(ctx context.Context, t theme.Theme) {
	r.set(ctx, KeyTheme, string(t))
}
