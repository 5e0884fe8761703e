package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/input"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/play"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

type model struct {
	ctx    context.Context
	ctrl   *play.Controller
	keys   keyMap
	mode   game.Mode
	sess   *game.Session
	theme  theme.Theme
	styles styles

	status    string
	showShare bool
	width     int
	height    int
}

func newModel(ctx context.Context, ctrl *play.Controller) model {
	t := ctrl.Theme(ctx)
	return model{
		ctx:    ctx,
		ctrl:   ctrl,
		keys:   keys,
		mode:   game.ModeDaily,
		sess:   ctrl.Session(ctx, game.ModeDaily),
		theme:  t,
		styles: newStyles(t),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchMode):
			m.mode = otherMode(m.mode)
			m.sess = m.ctrl.Session(m.ctx, m.mode)
			m.status, m.showShare = "", false

		case key.Matches(msg, m.keys.NewGame):
			m.mode = game.ModePractice
			sess, err := m.ctrl.Reset(m.ctx, m.mode)
			if err == nil {
				m.sess = sess
			}
			m.status, m.showShare = "New practice game", false

		case key.Matches(msg, m.keys.Theme):
			m.theme = m.ctrl.ToggleTheme(m.ctx)
			m.styles = newStyles(m.theme)

		case key.Matches(msg, m.keys.Share):
			m.showShare = !m.showShare

		default:
			m.press(keyName(msg))
		}
	}
	return m, nil
}

// press forwards a game key to the controller and updates the status line.
func (m *model) press(name string) {
	out, err := m.ctrl.Press(m.ctx, m.mode, name)
	m.sess = out.Session
	switch {
	case err != nil:
		m.status = rejectionText(err, m.mode)
	case out.Action == input.Submit:
		m.status = finishText(m.sess)
		m.showShare = m.sess.Status.Finished()
	case out.Changed:
		m.status = ""
	}
}

// keyName maps a bubbletea key onto the names input.Parse understands.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyBackspace, tea.KeyDelete:
		return "Backspace"
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes)
		}
	}
	return msg.String()
}

func otherMode(m game.Mode) game.Mode {
	if m == game.ModeDaily {
		return game.ModePractice
	}
	return game.ModeDaily
}

func rejectionText(err error, mode game.Mode) string {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return "Not enough letters"
	case errors.Is(err, game.ErrDuplicateGuess):
		return "Already guessed"
	case errors.Is(err, game.ErrNotInWordList):
		return "Not in word list"
	case errors.Is(err, game.ErrNotPlaying) && mode == game.ModePractice:
		return "Game over. ctrl+n starts a new one"
	case errors.Is(err, game.ErrNotPlaying):
		return "Game over. Come back tomorrow"
	}
	return err.Error()
}

func finishText(s *game.Session) string {
	switch s.Status {
	case game.StatusWon:
		return fmt.Sprintf("🎉 You won in %d/%d!", len(s.Guesses), game.MaxGuesses)
	case game.StatusLost:
		return "Game Over! The word was: " + s.Answer
	}
	return ""
}

func (m model) title() string {
	if m.mode == game.ModePractice {
		return "WORDLE · practice"
	}
	if d, err := daily.ParseDateKey(m.sess.Date); err == nil {
		return fmt.Sprintf("WORDLE · #%d · %s", daily.DayNumber(d), m.sess.Date)
	}
	return "WORDLE"
}

func (m model) View() string {
	parts := []string{
		m.styles.title.Render(m.title()),
		m.renderBoard(),
		m.renderKeyboard(),
	}
	if m.status != "" {
		parts = append(parts, m.styles.status.Render(m.status))
	}
	if m.showShare {
		parts = append(parts, m.styles.share.Render(m.ctrl.Share(m.ctx, m.mode)))
	}
	parts = append(parts, m.styles.help.Render(m.renderHelp()))

	view := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m model) renderBoard() string {
	rows := make([]string, 0, game.MaxGuesses)
	for _, g := range m.sess.Guesses {
		cells := make([]string, 0, words.Length)
		for _, t := range g.Tiles {
			cells = append(cells, m.styles.tile(t.Letter, t.State, false))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if m.sess.Status == game.StatusPlaying {
		cells := make([]string, 0, words.Length)
		for i := 0; i < words.Length; i++ {
			letter := ""
			if i < len(m.sess.Current) {
				letter = m.sess.Current[i : i+1]
			}
			cells = append(cells, m.styles.tile(letter, game.MarkEmpty, letter != ""))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	for len(rows) < game.MaxGuesses {
		cells := make([]string, words.Length)
		for i := range cells {
			cells[i] = m.styles.tile("", game.MarkEmpty, false)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

func (m model) renderKeyboard() string {
	rows := make([]string, 0, len(input.Rows))
	for _, r := range input.Rows {
		ks := make([]string, 0, len(r))
		for _, label := range r {
			ks = append(ks, m.styles.key(label, m.sess.Letters.Get(label)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, ks...))
	}
	return lipgloss.NewStyle().Margin(1, 0, 0, 0).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m model) renderHelp() string {
	hs := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		hs = append(hs, h.Key+" "+h.Desc)
	}
	return strings.Join(hs, " • ")
}
