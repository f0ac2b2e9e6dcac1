package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type metricsManager interface {
	Handler() http.Handler
	Middleware(endpoint string, next http.HandlerFunc) http.HandlerFunc
}

type Server struct {
	logger *slog.Logger

	handlers *handlers
	metrics  metricsManager
}

func New(logger *slog.Logger, game gameUseCase, metrics metricsManager) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		handlers: newHandlers(logger, game),
		metrics:  metrics,
	}
}

// Handler returns the routes of the REST surface.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.metrics.Middleware("ping", that.handlers.Ping))
	mux.HandleFunc("GET /game", that.metrics.Middleware("game", that.handlers.GetGame))
	mux.HandleFunc("POST /game/setup", that.metrics.Middleware("game_setup", that.handlers.SetupGame))
	mux.HandleFunc("POST /game/turn", that.metrics.Middleware("game_turn", that.handlers.MakeTurn))
	mux.HandleFunc("POST /game/restart", that.metrics.Middleware("game_restart", that.handlers.RestartGame))
	mux.HandleFunc("GET /leaderboard", that.metrics.Middleware("leaderboard", that.handlers.GetLeaderboard))
	mux.Handle("GET /metrics", that.metrics.Handler())

	return mux
}

// Start serves until ctx is canceled, then shuts the server down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
