package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-leaderboard/internal"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
)

func newLeaderboardCommand(app *cliApp) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the persisted leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("limit") && limit < 1 {
				return apperror.ErrInvalidLimit
			}

			ctx := cmd.Context()

			repo, closeStore, err := application.OpenLeaderboard(ctx, app.conf)
			if err != nil {
				return err
			}

			defer func() {
				if closeErr := closeStore(); closeErr != nil {
					app.logger.Error("could not close leaderboard storage", "error", closeErr)
				}
			}()

			records, err := repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load leaderboard: %w", err)
			}

			if limit > 0 && limit < len(records) {
				records = records[:limit]
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), newStyles().renderLeaderboard(records))

			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the top N players")

	return cmd
}
