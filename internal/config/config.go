// internal/config/config.go
//
// Process configuration for the server and the terminal client.
// Values come from the environment, optionally seeded from a .env file
// (godotenv never overrides variables that are already set).

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPort      = "5175"
	DefaultDBPath    = "./data/wordle.db"
	DefaultJWTSecret = "dev_secret_change_me"
	DefaultCookie    = "wordle_token"
	DefaultOrigin    = "http://localhost:5173"

	// DefaultMaxPlayers caps the server's in-memory controllers.
	DefaultMaxPlayers = 10000
)

type Config struct {
	Port           string
	LogLevel       string
	DBPath         string
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool // NODE_ENV=production: Secure + SameSite=None cookies
	AnswersFile    string
	AllowedFile    string
	Location       *time.Location // calendar-day time zone; nil means local
	Theme          string         // "light", "dark" or "" for auto
	LogFile        string         // TUI only
	MaxPlayers     int            // server only; cached per-profile controllers
}

// Load reads .env files (if present) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() Config {
	c := Config{
		Port:           getEnv("PORT", DefaultPort),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBPath:         getEnv("DB_PATH", DefaultDBPath),
		JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiresDays: envInt("JWT_EXPIRES_DAYS", 14),
		CookieName:     getEnv("COOKIE_NAME", DefaultCookie),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", DefaultOrigin),
		Production:     os.Getenv("NODE_ENV") == "production",
		AnswersFile:    os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:    os.Getenv("WORDS_ALLOWED_FILE"),
		Theme:          os.Getenv("THEME"),
		LogFile:        os.Getenv("WORDLE_LOG_FILE"),
		MaxPlayers:     envInt("MAX_PLAYERS", DefaultMaxPlayers),
	}
	if tz := os.Getenv("TZ_NAME"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Warn().Err(err).Str("tz", tz).Msg("unknown TZ_NAME, using local time")
		} else {
			c.Location = loc
		}
	}
	return c
}

// ApplyLogLevel sets zerolog's global level; unknown names leave it unchanged.
func (c Config) ApplyLogLevel() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// TokenTTL is how long profile and login tokens stay valid.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
