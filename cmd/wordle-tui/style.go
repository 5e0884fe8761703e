package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
)

type palette struct {
	correct, present, absent lipgloss.Color
	empty, typed, key        lipgloss.Color // unmarked tile / key backgrounds
	text, onMark, dim        lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {
		correct: "#6aaa64", present: "#c9b458", absent: "#787c7e",
		empty: "#d3d6da", typed: "#878a8c", key: "#d3d6da",
		text: "#1a1a1b", onMark: "#ffffff", dim: "#787c7e",
	},
	theme.Dark: {
		correct: "#538d4e", present: "#b59f3b", absent: "#3a3a3c",
		empty: "#3a3a3c", typed: "#565758", key: "#818384",
		text: "#ffffff", onMark: "#ffffff", dim: "#818384",
	},
}

// styles are the rendered pieces of the board for one theme.
type styles struct {
	p      palette
	title  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
	share  lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Light]
	}
	return styles{
		p:      p,
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.text).Margin(0, 0, 1, 0),
		status: lipgloss.NewStyle().Bold(true).Foreground(p.text).Margin(1, 0, 0, 0),
		help:   lipgloss.NewStyle().Foreground(p.dim).Margin(1, 0, 0, 0),
		share: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.correct).
			Padding(0, 1).
			Margin(1, 0, 0, 0),
	}
}

func (s styles) markColor(m game.Mark) (lipgloss.Color, bool) {
	switch m {
	case game.MarkCorrect:
		return s.p.correct, true
	case game.MarkPresent:
		return s.p.present, true
	case game.MarkAbsent:
		return s.p.absent, true
	}
	return "", false
}

// tile renders one board cell. typed marks an uncommitted letter.
func (s styles) tile(letter string, m game.Mark, typed bool) string {
	if letter == "" {
		letter = " "
	}
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1).Margin(0, 1, 0, 0)
	if c, ok := s.markColor(m); ok {
		return st.Background(c).Foreground(s.p.onMark).Render(letter)
	}
	bg := s.p.empty
	if typed {
		bg = s.p.typed
	}
	return st.Background(bg).Foreground(s.p.text).Render(letter)
}

// key renders one on-screen keyboard key colored by its letter state.
func (s styles) key(label string, m game.Mark) string {
	st := lipgloss.NewStyle().Padding(0, 1).Margin(0, 1, 0, 0).Bold(true)
	if c, ok := s.markColor(m); ok {
		return st.Background(c).Foreground(s.p.onMark).Render(label)
	}
	return st.Background(s.p.key).Foreground(s.p.text).Render(label)
}
