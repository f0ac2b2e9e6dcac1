package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/config"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/repository"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/service"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-leaderboard/pkg/metrics"
	"github.com/rocketscienceinc/tictactoe-leaderboard/transport/rest"
	"github.com/rocketscienceinc/tictactoe-leaderboard/transport/websocket"
)

// Engine bundles the game manager with the store it persists the leaderboard to.
type Engine struct {
	Manager *usecase.GameManager
	Metrics *metrics.Manager

	closeStore func() error
}

func (that *Engine) Close() error {
	return that.closeStore()
}

// OpenLeaderboard opens the store selected by storage.driver. The returned func
// releases the underlying connection.
func OpenLeaderboard(ctx context.Context, conf *config.Config) (repository.LeaderboardRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageMemory, "":
		return repository.NewMemoryLeaderboardRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewLeaderboardRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		return repository.NewSQLiteLeaderboardRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorage, conf.Storage.Driver)
	}
}

// NewEngine opens the store, loads the leaderboard and sets up a session with the
// configured default names.
func NewEngine(ctx context.Context, logger *slog.Logger, conf *config.Config) (*Engine, error) {
	leaderboardRepo, closeStore, err := OpenLeaderboard(ctx, conf)
	if err != nil {
		return nil, err
	}

	leaderboard := service.NewLeaderboardService(logger, leaderboardRepo)
	if err = leaderboard.Load(ctx); err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	game := entity.NewGame()
	game.Player(entity.PlayerX).Name = entity.NormalizeName(conf.Players.X, entity.PlayerX)
	game.Player(entity.PlayerO).Name = entity.NormalizeName(conf.Players.O, entity.PlayerO)

	metricsManager := metrics.NewManager()
	metricsManager.SetLeaderboardPlayers(len(leaderboard.Snapshot()))

	return &Engine{
		Manager:    usecase.NewGameManager(logger, tictactoe.NewGameController(game), leaderboard, metricsManager),
		Metrics:    metricsManager,
		closeStore: closeStore,
	}, nil
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine, err := NewEngine(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = engine.Close(); err != nil {
			log.Error("could not close leaderboard storage", "error", err)
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, engine.Manager, engine.Metrics).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, engine.Manager).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
