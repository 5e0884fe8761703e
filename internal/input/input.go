// Package input maps raw key names from physical keyboards and the
// on-screen keyboard onto game actions.
package input

import "strings"

// Action is what a key press asks the game to do.
type Action int

const (
	None   Action = iota // ignored key
	Append               // add Letter to the guess buffer
	Remove               // drop the last letter
	Submit               // commit the guess
)

func (a Action) String() string {
	switch a {
	case Append:
		return "append"
	case Remove:
		return "remove"
	case Submit:
		return "submit"
	}
	return "none"
}

// Key is a decoded key press.
type Key struct {
	Action Action
	Letter rune // uppercase, set only for Append
}

// Parse decodes a key name. Single letters append (either case); "Enter" and
// the on-screen "ENTER" submit; "Backspace" and the on-screen "DELETE"
// remove. Everything else is ignored.
func Parse(name string) Key {
	if len(name) == 1 {
		c := rune(name[0])
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			return Key{Action: Append, Letter: c}
		}
		return Key{}
	}
	switch strings.ToLower(name) {
	case "enter":
		return Key{Action: Submit}
	case "backspace", "delete":
		return Key{Action: Remove}
	}
	return Key{}
}

// Rows is the on-screen keyboard layout.
var Rows = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"ENTER", "Z", "X", "C", "V", "B", "N", "M", "DELETE"},
}
