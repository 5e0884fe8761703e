// cmd/wordle-tui/main.go
//
// Terminal Wordle. Plays against the same SQLite store as the server, under
// a single local profile. Logs go to WORDLE_LOG_FILE (discarded when unset)
// so they never draw over the board.

package main

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/play"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/profile"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/theme"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// localProfile scopes the terminal player's records inside the shared store.
const localProfile = "local"

func main() {
	cfg := config.Load()
	closeLog := setupLog(cfg)
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("wordle-tui")
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return err
	}
	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	st := store.NewAsync(store.WithPrefix(db, store.ProfilePrefix(localProfile)))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("flush pending writes")
		}
	}()

	ctx := context.Background()
	sel := daily.NewSelector(list, daily.SystemClock{Loc: cfg.Location})
	repo := profile.NewRepo(st, theme.FromEnv(cfg.Theme, theme.Terminal))
	ctrl := play.New(list, sel, repo)

	_, err = tea.NewProgram(newModel(ctx, ctrl), tea.WithAltScreen()).Run()
	return err
}

// setupLog points zerolog at the log file and returns its closer.
func setupLog(cfg config.Config) func() {
	cfg.ApplyLogLevel()
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
