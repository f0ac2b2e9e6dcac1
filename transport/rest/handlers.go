package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

type gameUseCase interface {
	SetupGame(ctx context.Context, nameX, nameO string) (entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error)
	RestartGame(ctx context.Context) entity.Game
	GetGame(ctx context.Context) entity.Game
	GetLeaderboard(ctx context.Context, limit int) ([]entity.Record, error)
}

type setupRequest struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type turnResponse struct {
	Game        entity.Game     `json:"game"`
	Leaderboard []entity.Record `json:"leaderboard,omitempty"`
	Error       string          `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger

	game gameUseCase
}

func newHandlers(logger *slog.Logger, game gameUseCase) *handlers {
	return &handlers{
		logger: logger.With("component", "rest_handlers"),
		game:   game,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.GetGame(r.Context()))
}

// SetupGame answers 409 with the unchanged game while a game is being played.
func (that *handlers) SetupGame(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := that.game.SetupGame(r.Context(), req.PlayerX, req.PlayerO)
	switch {
	case err == nil:
		that.writeJSON(w, http.StatusOK, game)
	case errors.Is(err, apperror.ErrGameInProgress):
		that.writeJSON(w, http.StatusConflict, turnResponse{Game: game, Error: err.Error()})
	default:
		that.logger.Error("failed to set up game", "method", "SetupGame", "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// MakeTurn answers 422 with the unchanged game for a rejected move, and 500 with the
// applied game when only the leaderboard write failed.
func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeTurn")

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeError(w, http.StatusBadRequest, "cell is required")
		return
	}

	result, err := that.game.MakeTurn(r.Context(), *req.Cell)
	if result == nil {
		log.Error("turn produced no result", "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := turnResponse{
		Game:        result.Game,
		Leaderboard: result.Leaderboard,
	}

	switch {
	case err == nil:
		that.writeJSON(w, http.StatusOK, response)
	case errors.Is(err, apperror.ErrInvalidMove):
		response.Error = err.Error()
		that.writeJSON(w, http.StatusUnprocessableEntity, response)
	default:
		log.Error("failed to make turn", "error", err)
		response.Error = err.Error()
		that.writeJSON(w, http.StatusInternalServerError, response)
	}
}

func (that *handlers) RestartGame(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.RestartGame(r.Context()))
}

func (that *handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			that.writeError(w, http.StatusBadRequest, apperror.ErrInvalidLimit.Error())
			return
		}

		limit = parsed
	}

	records, err := that.game.GetLeaderboard(r.Context(), limit)
	if err != nil {
		that.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}
