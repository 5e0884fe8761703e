// internal/httpserver/routes_game.go
//
// Game, statistics and theme routes for the caller's profile.
//
//   - GET  /game/{mode}            → current session ({mode} = daily | practice)
//   - POST /game/{mode}/letter     → append {letter}
//   - POST /game/{mode}/backspace  → remove last letter
//   - POST /game/{mode}/submit     → commit the guess buffer
//   - POST /game/{mode}/key        → raw key name {key} (Enter, Backspace, a..z, ENTER, DELETE)
//   - POST /game/practice/reset    → new practice game
//   - GET  /game/{mode}/share      → share text
//   - GET|DELETE /stats            → statistics / reset statistics
//   - GET|PUT /theme, POST /theme/toggle
//
// Rejected guesses answer 400 with a reason code and leave the session as
// it was. The secret word is omitted while a session is in play.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/input"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/play"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/stats"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
)

// sessionView is the public form of a session.
type sessionView struct {
	Mode      game.Mode    `json:"mode"`
	Date      string       `json:"date"`
	DayNumber int          `json:"dayNumber,omitempty"`
	Status    game.Status  `json:"status"`
	Current   string       `json:"currentGuess"`
	Guesses   []game.Guess `json:"guesses"`
	Letters   game.Letters `json:"letterStates"`
	Remaining int          `json:"remaining"`
	Answer    string       `json:"answer,omitempty"`
}

func viewOf(s *game.Session) sessionView {
	v := sessionView{
		Mode:      s.Mode(),
		Date:      s.Date,
		Status:    s.Status,
		Current:   s.Current,
		Guesses:   s.Guesses,
		Letters:   s.Letters,
		Remaining: s.Remaining(),
	}
	if s.Status.Finished() {
		v.Answer = s.Answer
	}
	if !s.Practice {
		if d, err := daily.ParseDateKey(s.Date); err == nil {
			v.DayNumber = daily.DayNumber(d)
		}
	}
	return v
}

// statsView adds derived fields to the stored statistics.
type statsView struct {
	stats.Statistics
	WinPercent int `json:"winPercent"`
	MaxBucket  int `json:"maxBucket"` // largest distribution count, for bar scaling
}

func statsViewOf(s stats.Statistics) statsView {
	return statsView{
		Statistics: s,
		WinPercent: s.WinPercent(),
		MaxBucket:  lo.Max(s.GuessDistribution[:]),
	}
}

// rejectionCode maps a submit rejection onto its API reason code.
func rejectionCode(err error) string {
	switch {
	case errors.Is(err, game.ErrNotPlaying):
		return "not_playing"
	case errors.Is(err, game.ErrWrongLength):
		return "wrong_length"
	case errors.Is(err, game.ErrDuplicateGuess):
		return "duplicate_guess"
	case errors.Is(err, game.ErrNotInWordList):
		return "not_in_word_list"
	}
	return "rejected"
}

// mountGame registers game, stats and theme routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game/{mode}", func(r chi.Router) {
		r.Use(withMode)
		r.Get("/", s.handleSession)
		r.Post("/letter", s.handleLetter)
		r.Post("/backspace", s.handleBackspace)
		r.Post("/submit", s.handleSubmit)
		r.Post("/key", s.handleKey)
		r.Post("/reset", s.handleReset)
		r.Get("/share", s.handleShare)
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statsViewOf(s.me(r).Stats(r.Context())))
	})
	r.Delete("/stats", func(w http.ResponseWriter, r *http.Request) {
		p := s.me(r)
		p.ResetStats(r.Context())
		writeJSON(w, http.StatusOK, statsViewOf(p.Stats(r.Context())))
	})

	r.Get("/theme", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]theme.Theme{"theme": s.me(r).Theme(r.Context())})
	})
	r.Put("/theme", s.handleSetTheme)
	r.Post("/theme/toggle", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]theme.Theme{"theme": s.me(r).ToggleTheme(r.Context())})
	})
}

type ctxModeKey struct{}

// withMode validates the {mode} URL parameter.
func withMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, err := game.ParseMode(chi.URLParam(r, "mode"))
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown_mode")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxModeKey{}, m)))
	})
}

func modeOf(r *http.Request) game.Mode {
	m, _ := r.Context().Value(ctxModeKey{}).(game.Mode)
	return m
}

// me returns the caller's controller.
func (s *Server) me(r *http.Request) *play.Controller {
	return s.player(identityFrom(r.Context()).ProfileID)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(s.me(r).Session(r.Context(), modeOf(r))))
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	k := input.Parse(req.Letter)
	if utf8.RuneCountInString(req.Letter) != 1 || k.Action != input.Append {
		writeError(w, http.StatusBadRequest, "bad_letter")
		return
	}
	sess, changed := s.me(r).Type(r.Context(), modeOf(r), k.Letter)
	writeJSON(w, http.StatusOK, map[string]any{"changed": changed, "session": viewOf(sess)})
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	sess, changed := s.me(r).Backspace(r.Context(), modeOf(r))
	writeJSON(w, http.StatusOK, map[string]any{"changed": changed, "session": viewOf(sess)})
}

// guessRes is returned for an accepted guess.
type guessRes struct {
	Guess   game.Guess  `json:"guess"`
	Session sessionView `json:"session"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, err := s.me(r).Submit(r.Context(), modeOf(r))
	s.writeSubmit(w, sess, err)
}

func (s *Server) writeSubmit(w http.ResponseWriter, sess *game.Session, err error) {
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   rejectionCode(err),
			"session": viewOf(sess),
		})
		return
	}
	writeJSON(w, http.StatusOK, guessRes{Guess: sess.Guesses[len(sess.Guesses)-1], Session: viewOf(sess)})
}

type keyReq struct {
	Key string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	out, err := s.me(r).Press(r.Context(), modeOf(r), req.Key)
	if out.Action == input.Submit {
		s.writeSubmit(w, out.Session, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"action":  out.Action.String(),
		"changed": out.Changed,
		"session": viewOf(out.Session),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.me(r).Reset(r.Context(), modeOf(r))
	if errors.Is(err, play.ErrNotPractice) {
		writeError(w, http.StatusBadRequest, "not_practice")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"text": s.me(r).Share(r.Context(), modeOf(r))})
}

type themeReq struct {
	Theme string `json:"theme"`
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	t, ok := theme.Parse(req.Theme)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_theme")
		return
	}
	s.me(r).SetTheme(r.Context(), t)
	writeJSON(w, http.StatusOK, map[string]theme.Theme{"theme": t})
}
