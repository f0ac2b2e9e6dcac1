// Package cli holds the tictactoe commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/config"
)

const defaultConfigPath = "config.yml"

// cliApp is filled in before any subcommand runs.
type cliApp struct {
	configPath string

	conf   *config.Config
	logger *slog.Logger
}

func NewRootCommand() *cobra.Command {
	app := &cliApp{}

	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe with a persistent leaderboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(app.configPath)
			if err != nil {
				return err
			}

			app.conf = conf

			// interactive commands keep stdout for the game itself
			logOutput := cmd.ErrOrStderr()
			if cmd.Name() == "serve" {
				logOutput = cmd.OutOrStdout()
			}

			app.logger = initLogger(conf, logOutput)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&app.configPath, "config", defaultConfigPath, "path to the config file")

	cmd.AddCommand(
		newServeCommand(app),
		newPlayCommand(app),
		newLeaderboardCommand(app),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// initialize logger.
func initLogger(conf *config.Config, output io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}
