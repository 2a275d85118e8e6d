package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/evaluator"
	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
	"github.com/robalobadob/wordle/apps/go-tui/internal/tui"
)

var (
	playAPIURL string
	playDaily  bool
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against an evaluator (default)",
		RunE:  runPlay,
	}
	cmd.Flags().StringVar(&playAPIURL, "api-url", "", "evaluator base URL (overrides WORDLE_API_URL)")
	cmd.Flags().BoolVar(&playDaily, "daily", false, "play the word of the day")
	return cmd
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadClient()
	if playAPIURL != "" {
		cfg.APIURL = playAPIURL
	}
	if playDaily {
		cfg.Mode = daily.Mode
	}
	if cfg.Mode != "" && cfg.Mode != daily.Mode {
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := setupLogging(cfg.LogLevel, w); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev := evaluator.New(cfg.APIURL, evaluator.WithMode(cfg.Mode))
	return tui.Run(ctx, tui.New(ctx, session.New(ev)))
}
