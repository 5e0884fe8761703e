package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
)

var (
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidSignup wraps every username/password rule violation.
	ErrInvalidSignup = errors.New("invalid signup")
)

// NewID returns a fresh, time-ordered profile identifier.
func NewID() string {
	return ulid.Make().String()
}

// Account links a username to the profile it resumes.
type Account struct {
	Username     string    `json:"username"`
	ProfileID    string    `json:"profileId"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Accounts stores optional logins that let a player resume their profile
// from another browser or device.
type Accounts struct {
	st store.Storage
}

func NewAccounts(st store.Storage) *Accounts {
	return &Accounts{st: st}
}

func accountKey(username string) string {
	return "account/" + strings.ToLower(username)
}

// normalizeUsername trims whitespace.
func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return fmt.Errorf("%w: username must be 3–24 chars", ErrInvalidSignup)
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("%w: username: letters, numbers, underscore only", ErrInvalidSignup)
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return fmt.Errorf("%w: password must be 8–100 chars", ErrInvalidSignup)
	}
	return nil
}

// Signup creates an account for profileID. The username is claimed with an
// atomic create, so of several concurrent signups exactly one wins and the
// rest get ErrUsernameTaken.
func (a *Accounts) Signup(ctx context.Context, username, password, profileID string) (*Account, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, password); err != nil {
		return nil, err
	}
	// Cheap early answer; Create below is what decides.
	if _, ok, err := a.st.Get(ctx, accountKey(username)); err != nil {
		return nil, err
	} else if ok {
		return nil, ErrUsernameTaken
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &Account{
		Username:     username,
		ProfileID:    profileID,
		PasswordHash: string(h),
		CreatedAt:    time.Now().UTC(),
	}
	b, err := json.Marshal(acc)
	if err != nil {
		return nil, err
	}
	created, err := a.st.Create(ctx, accountKey(username), string(b))
	if err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}
	if !created {
		return nil, ErrUsernameTaken
	}
	return acc, nil
}

// Login checks credentials and returns the account.
func (a *Accounts) Login(ctx context.Context, username, password string) (*Account, error) {
	raw, ok, err := a.st.Get(ctx, accountKey(normalizeUsername(username)))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	var acc Account
	if err := json.Unmarshal([]byte(raw), &acc); err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &acc, nil
}
