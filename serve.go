package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

var (
	servePort string
	serveDB   string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development evaluator server",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&serveDB, "db", "", "SQLite database path (overrides DB_PATH)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveDB != "" {
		cfg.DBPath = serveDB
	}
	if err := setupLogging(cfg.LogLevel, os.Stderr); err != nil {
		return err
	}

	dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	answers, allowed := dict.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	st, closeStore, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := httpserver.New(st, dict, httpserver.Config{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting evaluator")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore returns the SQLite store at path, or a memory store when path
// is empty.
func openStore(path string) (store.Store, func(), error) {
	if path == "" {
		log.Info().Msg("using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	log.Info().Str("path", path).Msg("using sqlite store")
	return db, func() { _ = db.Close() }, nil
}
