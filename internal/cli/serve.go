package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-leaderboard/internal"
)

func newServeCommand(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and WebSocket servers until interrupted",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := application.RunApp(app.logger, app.conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}
