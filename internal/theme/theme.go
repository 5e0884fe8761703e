// Package theme holds the light/dark preference.
package theme

import (
	"strings"

	"github.com/muesli/termenv"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark" (any case).
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle flips light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Preference supplies the environment's theme when none is saved.
type Preference func() Theme

// Fixed always prefers t.
func Fixed(t Theme) Preference {
	return func() Theme { return t }
}

// Terminal prefers dark when the controlling terminal has a dark background.
func Terminal() Theme {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// FromEnv prefers the named theme, falling back to fallback when the value
// is empty or unknown.
func FromEnv(value string, fallback Preference) Preference {
	if t, ok := Parse(value); ok {
		return Fixed(t)
	}
	return fallback
}
