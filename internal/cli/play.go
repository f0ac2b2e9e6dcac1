package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-leaderboard/internal"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/service"
)

const playHelp = "Enter a cell 1-9, r to restart, n for new players, q to quit."

type gameUseCase interface {
	SetupGame(ctx context.Context, nameX, nameO string) (entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error)
	RestartGame(ctx context.Context) entity.Game
	GetGame(ctx context.Context) entity.Game
}

func newPlayCommand(app *cliApp) *cobra.Command {
	var withBot bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, err := application.NewEngine(ctx, app.logger, app.conf)
			if err != nil {
				return err
			}

			defer func() {
				if closeErr := engine.Close(); closeErr != nil {
					app.logger.Error("could not close leaderboard storage", "error", closeErr)
				}
			}()

			var bot service.BotService
			if withBot {
				bot = service.NewBotService(nil)
			}

			return newSession(app.logger, engine.Manager, bot, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&withBot, "bot", false, "let a bot play O")

	return cmd
}

// session drives one terminal game from line based input.
type session struct {
	logger *slog.Logger

	game   gameUseCase
	bot    service.BotService
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

func newSession(logger *slog.Logger, game gameUseCase, bot service.BotService, in io.Reader, out io.Writer) *session {
	return &session{
		logger: logger.With("component", "play"),
		game:   game,
		bot:    bot,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(),
	}
}

// Run plays until the user quits or the input ends.
func (that *session) Run(ctx context.Context) error {
	if that.game.GetGame(ctx).IsSetup() {
		if !that.askNames(ctx) {
			return nil
		}
	}

	that.printf("%s\n", playHelp)
	that.printGame(that.game.GetGame(ctx))

	for {
		line, ok := that.readLine("> ")
		if !ok {
			return nil
		}

		switch strings.ToLower(line) {
		case "q":
			return nil
		case "r":
			that.printGame(that.game.RestartGame(ctx))
		case "n":
			if that.game.GetGame(ctx).IsOngoing() {
				that.printf("%s\n", that.styles.renderError(apperror.ErrGameInProgress))
				continue
			}

			if !that.askNames(ctx) {
				return nil
			}

			that.printGame(that.game.GetGame(ctx))
		case "":
			continue
		default:
			cell, err := strconv.Atoi(line)
			if err != nil {
				that.printf("%s\n", playHelp)
				continue
			}

			if err = that.turn(ctx, cell-1); err != nil {
				return err
			}
		}
	}
}

func (that *session) askNames(ctx context.Context) bool {
	nameX, ok := that.readLine("Name of X: ")
	if !ok {
		return false
	}

	nameO := "Bot"
	if that.bot == nil {
		if nameO, ok = that.readLine("Name of O: "); !ok {
			return false
		}
	}

	if _, err := that.game.SetupGame(ctx, nameX, nameO); err != nil {
		that.printf("%s\n", that.styles.renderError(err))
	}

	return true
}

func (that *session) turn(ctx context.Context, cell int) error {
	result, err := that.game.MakeTurn(ctx, cell)
	if result == nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err != nil {
		that.printf("%s\n", that.styles.renderError(err))
		if errors.Is(err, apperror.ErrInvalidMove) {
			return nil
		}
	}

	that.printResult(result)

	if that.bot == nil || !result.Game.IsOngoing() || result.Game.Turn != entity.PlayerO {
		return nil
	}

	botCell, err := that.bot.ChooseCell(result.Game)
	if err != nil {
		return fmt.Errorf("bot failed to choose a cell: %w", err)
	}

	that.printf("Bot takes %d\n", botCell+1)

	return that.turn(ctx, botCell)
}

func (that *session) printResult(result *entity.TurnResult) {
	that.printGame(result.Game)

	if !result.Game.IsFinished() {
		return
	}

	if result.Game.Status == entity.StatusWon {
		that.printf("%s\n", that.styles.renderLeaderboard(result.Leaderboard))
	}

	that.printf("r to play again, n for new players, q to quit\n")
}

func (that *session) printGame(game entity.Game) {
	that.printf("%s\n%s\n", that.styles.renderBoard(game), that.styles.renderStatus(game))
}

func (that *session) readLine(prompt string) (string, bool) {
	that.printf("%s", prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}

		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
