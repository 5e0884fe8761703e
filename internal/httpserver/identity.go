// internal/httpserver/identity.go
//
// Player identity for HTTP clients.
//
// Every caller is bound to a profile ID (a ULID) carried in an HS256 JWT,
// read from "Authorization: Bearer" or the auth cookie. Callers without a
// valid token get a fresh anonymous profile and a cookie for it.
//
// Accounts are optional: signup attaches a username to the caller's current
// profile; login switches the caller to the account's profile, so progress
// follows the player across browsers.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/profile"
)

// identity is placed into request context by withProfile.
type identity struct {
	ProfileID string `json:"profileId"`
	Username  string `json:"username,omitempty"`
}

// ctxIdentityKey is the context key type for storing identity.
type ctxIdentityKey struct{}

func identityFrom(ctx context.Context) identity {
	id, _ := ctx.Value(ctxIdentityKey{}).(identity)
	return id
}

// withProfile resolves the caller's profile, issuing a new one when the
// request carries no valid token. It never 401s.
func (s *Server) withProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.parseToken(bearerOrCookie(r, s.cfg.CookieName))
		if !ok {
			id = identity{ProfileID: profile.NewID()}
			if err := s.issue(w, id); err != nil {
				log.Error().Err(err).Msg("issue profile token")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			log.Info().Str("profile", id.ProfileID).Msg("new profile")
		}
		ctx := context.WithValue(r.Context(), ctxIdentityKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAccount rejects callers whose token has no username.
func requireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identityFrom(r.Context()).Username == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// mountAuth registers /auth/*.
func (s *Server) mountAuth(r chi.Router) {
	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/logout", s.handleLogout)
	r.With(requireAccount).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identityFrom(r.Context()))
	})
}

// credentials is the signup/login payload.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleSignup creates an account for the caller's current profile.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	me := identityFrom(r.Context())
	acc, err := s.accounts.Signup(r.Context(), body.Username, body.Password, me.ProfileID)
	switch {
	case errors.Is(err, profile.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username taken")
		return
	case errors.Is(err, profile.ErrInvalidSignup):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("profile", me.ProfileID).Msg("signup")
		writeError(w, http.StatusInternalServerError, "signup_failed")
		return
	}
	id := identity{ProfileID: acc.ProfileID, Username: acc.Username}
	if err := s.issue(w, id); err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profileId": acc.ProfileID,
		"username":  acc.Username,
		"createdAt": acc.CreatedAt,
	})
}

// handleLogin authenticates and switches the caller to the account's profile.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	acc, err := s.accounts.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if !errors.Is(err, profile.ErrInvalidCredentials) {
			log.Warn().Err(err).Msg("login lookup")
		}
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	id := identity{ProfileID: acc.ProfileID, Username: acc.Username}
	if err := s.issue(w, id); err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// handleLogout clears the auth cookie. The next request starts a new
// anonymous profile.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ------------------------------ JWT & cookies ------------------------------

// issue signs a token for id and sets it as the auth cookie.
func (s *Server) issue(w http.ResponseWriter, id identity) error {
	tok, exp, err := s.signJWT(id)
	if err != nil {
		return err
	}
	s.setCookie(w, tok, exp)
	return nil
}

// signJWT creates an HS256 JWT with the profile ID and optional username.
func (s *Server) signJWT(id identity) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TokenTTL())
	claims := jwt.MapClaims{
		"pid": id.ProfileID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	if id.Username != "" {
		claims["username"] = id.Username
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseToken validates a token and extracts its identity.
func (s *Server) parseToken(tok string) (identity, bool) {
	if tok == "" {
		return identity{}, false
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return identity{}, false
	}
	pid, _ := claims["pid"].(string)
	if pid == "" {
		return identity{}, false
	}
	username, _ := claims["username"].(string)
	return identity{ProfileID: pid, Username: username}, true
}

func (s *Server) cookie(value string) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
	}
}

// setCookie writes the auth token cookie.
func (s *Server) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	c := s.cookie(token)
	c.Expires = exp
	http.SetCookie(w, c)
}

// clearCookie deletes the auth token cookie.
func (s *Server) clearCookie(w http.ResponseWriter) {
	c := s.cookie("")
	c.MaxAge = -1
	http.SetCookie(w, c)
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func bearerOrCookie(r *http.Request, cookieName string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
