package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the non-letter commands. Letters, Enter and Backspace go to
// the game through input.Parse.
type keyMap struct {
	SwitchMode key.Binding
	NewGame    key.Binding
	Theme      key.Binding
	Share      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	SwitchMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "daily/practice")),
	NewGame:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new practice game")),
	Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	Share:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "share")),
	Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.SwitchMode, k.NewGame, k.Theme, k.Share, k.Quit}
}
