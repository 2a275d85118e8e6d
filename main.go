// Command wordle is a terminal Wordle client, plus a development evaluator
// server it can play against.
//
//	wordle               # play against WORDLE_API_URL
//	wordle play --daily  # play the word of the day
//	wordle serve         # run the evaluator on PORT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	play := newPlayCmd()
	root := &cobra.Command{
		Use:          "wordle",
		Short:        "Play Wordle in the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			config.LoadDotEnv()
		},
		RunE: play.RunE,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	root.Flags().AddFlagSet(play.Flags())
	root.AddCommand(play, newServeCmd())
	return root
}

// setupLogging points the global zerolog logger at w with the given level.
func setupLogging(level string, w io.Writer) error {
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
