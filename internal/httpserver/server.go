// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Profile cookie: every request is bound to a player profile, issued on
//     first contact (see identity.go).
//   - Game, stats and theme endpoints for the caller's profile
//     (see routes_game.go).
//   - Optional accounts: /auth/* (see identity.go).
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Each profile gets its own play.Controller; its mutex serializes that
//     player's requests. At most Config.MaxPlayers controllers stay cached;
//     the least recently used one is dropped first and reloads from storage.
//   - Accounts are written synchronously (Deps.Accounts), so a signup only
//     succeeds once the account is stored.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/play"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/profile"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Config config.Config
	Words  *words.List
	Clock  daily.Clock
	Store  store.Storage // gameplay records; may drop failed writes

	// Accounts must report write failures to the caller. Defaults to Store.
	Accounts store.Storage
}

// Server bundles router, storage and per-profile game controllers.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	words    *words.List
	selector *daily.Selector
	st       store.Storage
	accounts *profile.Accounts
	pref     theme.Preference

	mu         sync.Mutex
	players    map[string]*player // by profile ID
	maxPlayers int
	tick       uint64 // use counter for LRU order
}

// player is a cached controller and when it was last used.
type player struct {
	ctrl *play.Controller
	used uint64
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Clock == nil {
		d.Clock = daily.SystemClock{Loc: d.Config.Location}
	}
	if d.Config.CookieName == "" {
		d.Config.CookieName = config.DefaultCookie
	}
	if d.Config.JWTSecret == "" {
		d.Config.JWTSecret = config.DefaultJWTSecret
	}
	if d.Config.JWTExpiresDays <= 0 {
		d.Config.JWTExpiresDays = 14
	}
	if d.Config.MaxPlayers <= 0 {
		d.Config.MaxPlayers = config.DefaultMaxPlayers
	}
	if d.Accounts == nil {
		d.Accounts = d.Store
	}
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      d.Config,
		words:    d.Words,
		selector: daily.NewSelector(d.Words, d.Clock),
		st:       d.Store,
		accounts: profile.NewAccounts(d.Accounts),
		pref:     theme.FromEnv(d.Config.Theme, theme.Fixed(theme.Light)),

		players:    make(map[string]*player),
		maxPlayers: d.Config.MaxPlayers,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-go",
			"endpoints": []string{
				"/health", "GET /game/{mode}", "POST /game/{mode}/key",
				"/stats", "/theme", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	// Everything a player touches runs under a profile.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withProfile)
		s.mountGame(r)
		s.mountAuth(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// player returns the controller for a profile, creating it on first use.
func (s *Server) player(profileID string) *play.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick++
	if p, ok := s.players[profileID]; ok {
		p.used = s.tick
		return p.ctrl
	}
	for len(s.players) >= s.maxPlayers {
		s.evictOldest()
	}
	repo := profile.NewRepo(store.WithPrefix(s.st, store.ProfilePrefix(profileID)), s.pref)
	c := play.New(s.words, s.selector, repo)
	s.players[profileID] = &player{ctrl: c, used: s.tick}
	log.Debug().Str("profile", profileID).Int("players", len(s.players)).Msg("player loaded")
	return c
}

// evictOldest drops the least recently used controller. Its records are
// already in storage, so the next request for that profile reloads them.
// Callers hold s.mu.
func (s *Server) evictOldest() {
	oldest := lo.MinBy(lo.Entries(s.players), func(a, b lo.Entry[string, *player]) bool {
		return a.Value.used < b.Value.used
	})
	delete(s.players, oldest.Key)
	log.Debug().Str("profile", oldest.Key).Msg("player evicted")
}

// cachedPlayers reports how many controllers are held in memory.
func (s *Server) cachedPlayers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = config.DefaultOrigin
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
