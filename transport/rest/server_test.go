package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/repository"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/service"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-leaderboard/pkg/metrics"
	"github.com/rocketscienceinc/tictactoe-leaderboard/testing/suite"
)

func newTestServer(t *testing.T, records ...entity.Record) *httptest.Server {
	t.Helper()

	logger := suite.Logger()

	leaderboard := service.NewLeaderboardService(logger, repository.NewMemoryLeaderboardRepository(records...))
	require.NoError(t, leaderboard.Load(context.Background()))

	metricsManager := metrics.NewManager()
	manager := usecase.NewGameManager(logger, tictactoe.NewGameController(nil), leaderboard, metricsManager)

	server := httptest.NewServer(New(logger, manager, metricsManager).Handler())
	t.Cleanup(server.Close)

	return server
}

func doRequest(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}

func TestServer_Ping(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodGet, server.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(body))
}

func TestServer_GameFlow(t *testing.T) {
	server := newTestServer(t)

	t.Run("Initial state is setup", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, server.URL+"/game", "")
		require.Equal(t, http.StatusOK, status)

		var game entity.Game
		require.NoError(t, json.Unmarshal(body, &game))
		assert.Equal(t, entity.StatusSetup, game.Status)
	})

	t.Run("Turn before setup is rejected", func(t *testing.T) {
		status, body := doRequest(t, http.MethodPost, server.URL+"/game/turn", `{"cell": 0}`)
		require.Equal(t, http.StatusUnprocessableEntity, status)

		var response turnResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Contains(t, response.Error, "game is not started")
		assert.Equal(t, entity.StatusSetup, response.Game.Status)
	})

	t.Run("Setup names the players", func(t *testing.T) {
		status, body := doRequest(t, http.MethodPost, server.URL+"/game/setup", `{"player_x": " alice ", "player_o": "bob"}`)
		require.Equal(t, http.StatusOK, status)

		var game entity.Game
		require.NoError(t, json.Unmarshal(body, &game))
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, "alice", game.Players[0].Name)
		assert.Equal(t, "bob", game.Players[1].Name)
	})

	t.Run("Setup is refused while the game is ongoing", func(t *testing.T) {
		status, body := doRequest(t, http.MethodPost, server.URL+"/game/setup", `{"player_x": "carol", "player_o": "dave"}`)
		require.Equal(t, http.StatusConflict, status)

		var response turnResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, apperror.ErrGameInProgress.Error(), response.Error)
		assert.Equal(t, entity.StatusOngoing, response.Game.Status)
		assert.Equal(t, "alice", response.Game.Players[0].Name)
		assert.Equal(t, "bob", response.Game.Players[1].Name)
	})

	t.Run("Occupied cell is rejected with the unchanged game", func(t *testing.T) {
		status, _ := doRequest(t, http.MethodPost, server.URL+"/game/turn", `{"cell": 0}`)
		require.Equal(t, http.StatusOK, status)

		status, body := doRequest(t, http.MethodPost, server.URL+"/game/turn", `{"cell": 0}`)
		require.Equal(t, http.StatusUnprocessableEntity, status)

		var response turnResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, entity.PlayerO, response.Game.Turn)
		assert.Equal(t, entity.PlayerX, response.Game.Board[0])
	})

	t.Run("Winning move returns the leaderboard", func(t *testing.T) {
		var body []byte
		for _, cell := range []string{"3", "1", "4", "2"} {
			var status int
			status, body = doRequest(t, http.MethodPost, server.URL+"/game/turn", `{"cell": `+cell+`}`)
			require.Equal(t, http.StatusOK, status)
		}

		var response turnResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, entity.StatusWon, response.Game.Status)
		assert.Equal(t, entity.PlayerX, response.Game.Winner)
		assert.Equal(t, []int{0, 1, 2}, response.Game.WinningLine)
		assert.Equal(t, []entity.Record{{Name: "alice", Wins: 1}, {Name: "bob", Losses: 1}}, response.Leaderboard)
	})

	t.Run("Setup is accepted once the game is over", func(t *testing.T) {
		status, body := doRequest(t, http.MethodPost, server.URL+"/game/setup", `{"player_x": "alice", "player_o": "bob"}`)
		require.Equal(t, http.StatusOK, status)

		var game entity.Game
		require.NoError(t, json.Unmarshal(body, &game))
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, 1, game.Players[0].Wins)
	})

	t.Run("Restart keeps the tally", func(t *testing.T) {
		status, body := doRequest(t, http.MethodPost, server.URL+"/game/restart", "")
		require.Equal(t, http.StatusOK, status)

		var game entity.Game
		require.NoError(t, json.Unmarshal(body, &game))
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, 1, game.Players[0].Wins)
		assert.Equal(t, 1, game.Players[1].Losses)
	})
}

func TestServer_BadRequests(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "Turn without cell", method: http.MethodPost, path: "/game/turn", body: `{}`, status: http.StatusBadRequest},
		{name: "Turn with broken body", method: http.MethodPost, path: "/game/turn", body: `{`, status: http.StatusBadRequest},
		{name: "Setup with broken body", method: http.MethodPost, path: "/game/setup", body: `{`, status: http.StatusBadRequest},
		{name: "Zero limit", method: http.MethodGet, path: "/leaderboard?limit=0", status: http.StatusBadRequest},
		{name: "Non numeric limit", method: http.MethodGet, path: "/leaderboard?limit=abc", status: http.StatusBadRequest},
		{name: "Wrong method", method: http.MethodGet, path: "/game/turn", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, tt.method, server.URL+tt.path, tt.body)

			assert.Equal(t, tt.status, status)
		})
	}
}

func TestServer_Leaderboard(t *testing.T) {
	server := newTestServer(t,
		entity.Record{Name: "P2", Wins: 5},
		entity.Record{Name: "P1", Wins: 3},
	)

	t.Run("All records", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, server.URL+"/leaderboard", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[{"name":"P2","wins":5,"losses":0},{"name":"P1","wins":3,"losses":0}]`, string(body))
	})

	t.Run("Limited", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, server.URL+"/leaderboard?limit=1", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[{"name":"P2","wins":5,"losses":0}]`, string(body))
	})
}

func TestServer_Metrics(t *testing.T) {
	server := newTestServer(t)

	doRequest(t, http.MethodGet, server.URL+"/ping", "")

	status, body := doRequest(t, http.MethodGet, server.URL+"/metrics", "")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `tictactoe_engine_http_requests_total{endpoint="ping",method="GET",status_code="200"} 1`)
}
