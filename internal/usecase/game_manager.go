package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-leaderboard/pkg/metrics"
)

type gameController interface {
	Setup(nameX, nameO string) (entity.Game, error)
	Restart() entity.Game
	State() entity.Game
	MakeTurn(cell int) (entity.Game, error)
}

type leaderboardService interface {
	RecordOutcome(ctx context.Context, name string, won bool) ([]entity.Record, error)
	Snapshot() []entity.Record
}

type gameMetrics interface {
	ObserveTurn(result string)
	ObserveGameFinished(outcome string)
	ObserveLeaderboardUpdate(players int)
	ObserveLeaderboardError()
}

// GameManager is the single entry point of the outer surfaces into the engine. It
// processes one request at a time, so a move and the leaderboard update it causes
// complete before the next request is looked at.
type GameManager struct {
	logger *slog.Logger

	controller  gameController
	leaderboard leaderboardService
	metrics     gameMetrics

	mu sync.Mutex
}

func NewGameManager(
	logger *slog.Logger,
	controller gameController,
	leaderboard leaderboardService,
	observer gameMetrics,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		controller:  controller,
		leaderboard: leaderboard,
		metrics:     observer,
	}
}

// SetupGame names the players of the next game. It fails with apperror.ErrGameInProgress
// while a game is being played and returns the unchanged game.
func (that *GameManager) SetupGame(_ context.Context, nameX, nameO string) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.controller.Setup(nameX, nameO)
	if err != nil {
		that.logger.Debug("setup rejected", "method", "SetupGame", "error", err)
		return game, err
	}

	that.logger.Info("game set up",
		"method", "SetupGame",
		"player_x", game.Players[0].Name,
		"player_o", game.Players[1].Name,
	)

	return game, nil
}

// MakeTurn places the current mark on cell. A rejected move returns the unchanged game
// together with an error wrapping apperror.ErrInvalidMove. When the move wins the game
// the winner and then the loser are recorded on the leaderboard; a failed leaderboard
// write is returned alongside the already applied result.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.controller.MakeTurn(cell)
	if err != nil {
		that.metrics.ObserveTurn(metrics.TurnRejected)
		log.Debug("turn rejected", "error", err)

		return &entity.TurnResult{Game: game}, err
	}

	that.metrics.ObserveTurn(metrics.TurnAccepted)

	result := &entity.TurnResult{Game: game}

	if !game.IsFinished() {
		return result, nil
	}

	that.metrics.ObserveGameFinished(game.Status)
	log.Info("game finished", "status", game.Status, "winner", game.Winner)

	if game.Status != entity.StatusWon {
		return result, nil
	}

	result.Leaderboard, err = that.recordWin(ctx, &game)
	if err != nil {
		return result, fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return result, nil
}

func (that *GameManager) recordWin(ctx context.Context, game *entity.Game) ([]entity.Record, error) {
	winner := game.Player(game.Winner)
	loser := game.Player(opponentMark(game.Winner))

	var errs []error

	records, err := that.recordOutcome(ctx, winner.Name, true)
	if err != nil {
		errs = append(errs, err)
	}

	loserRecords, err := that.recordOutcome(ctx, loser.Name, false)
	if err != nil {
		errs = append(errs, err)
	}

	if loserRecords != nil {
		records = loserRecords
	}

	return records, errors.Join(errs...)
}

func (that *GameManager) recordOutcome(ctx context.Context, name string, won bool) ([]entity.Record, error) {
	records, err := that.leaderboard.RecordOutcome(ctx, name, won)
	if err != nil {
		that.metrics.ObserveLeaderboardError()
		return records, err
	}

	that.metrics.ObserveLeaderboardUpdate(len(records))

	return records, nil
}

func (that *GameManager) RestartGame(_ context.Context) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := that.controller.Restart()

	that.logger.Debug("game restarted", "method", "RestartGame")

	return game
}

func (that *GameManager) GetGame(_ context.Context) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.controller.State()
}

// GetLeaderboard returns the top limit records, or all of them when limit is zero.
func (that *GameManager) GetLeaderboard(_ context.Context, limit int) ([]entity.Record, error) {
	if limit < 0 {
		return nil, apperror.ErrInvalidLimit
	}

	records := that.leaderboard.Snapshot()
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	return records, nil
}

func opponentMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}
