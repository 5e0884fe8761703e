// main.go
//
// Wordle HTTP server.
// Loads config (.env + environment), the word lists, and the SQLite store,
// then serves the JSON API until SIGINT/SIGTERM. Queued writes are flushed
// before exit.

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func main() {
	cfg := config.Load()
	cfg.ApplyLogLevel()

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := list.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	st := store.NewAsync(db)

	// Gameplay writes go through the async writer; accounts hit the database
	// directly so a failed signup is reported.
	srv := httpserver.New(httpserver.Deps{Config: cfg, Words: list, Store: st, Accounts: db})
	hs := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Router()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdown); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting go-wordle")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Close(closeCtx); err != nil {
		log.Warn().Err(err).Msg("flush pending writes")
	}
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
	log.Info().Msg("bye")
}
