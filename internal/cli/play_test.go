package cli

import (
	"bytes"
	"context"
	"math/rand"
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

func newTestManager(t *testing.T) *usecase.GameManager {
	t.Helper()

	leaderboard := service.NewLeaderboardService(suite.Logger(), repository.NewMemoryLeaderboardRepository())
	require.NoError(t, leaderboard.Load(context.Background()))

	return usecase.NewGameManager(suite.Logger(), tictactoe.NewGameController(nil), leaderboard, metrics.NewManager())
}

func runSession(t *testing.T, manager *usecase.GameManager, bot service.BotService, input string) string {
	t.Helper()

	var out bytes.Buffer
	err := newSession(suite.Logger(), manager, bot, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)

	return out.String()
}

func TestSession_HotSeat(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	// When: X takes the top row while O answers in the middle row
	output := runSession(t, manager, nil, "alice\nbob\n1\n4\n2\n5\n3\nq\n")

	// Then: the win and the leaderboard are shown
	assert.Contains(t, output, "alice wins!")
	assert.Contains(t, output, "Losses")
	assert.Contains(t, output, "bob")

	game := manager.GetGame(ctx)
	assert.Equal(t, entity.StatusWon, game.Status)
	assert.Equal(t, []int{0, 1, 2}, game.WinningLine)

	records, err := manager.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []entity.Record{{Name: "alice", Wins: 1}, {Name: "bob", Losses: 1}}, records)
}

func TestSession_Commands(t *testing.T) {
	ctx := context.Background()

	t.Run("Occupied cell is reported", func(t *testing.T) {
		manager := newTestManager(t)

		output := runSession(t, manager, nil, "alice\nbob\n5\n5\nq\n")

		assert.Contains(t, output, "cell is already occupied")
		assert.Equal(t, entity.PlayerO, manager.GetGame(ctx).Turn)
	})

	t.Run("Out of range cell is reported", func(t *testing.T) {
		manager := newTestManager(t)

		output := runSession(t, manager, nil, "alice\nbob\n10\nq\n")

		assert.Contains(t, output, "invalid cell index")
	})

	t.Run("Garbage prints the help", func(t *testing.T) {
		manager := newTestManager(t)

		output := runSession(t, manager, nil, "alice\nbob\nhello\nq\n")

		assert.Equal(t, 2, strings.Count(output, playHelp))
	})

	t.Run("Restart clears the board", func(t *testing.T) {
		manager := newTestManager(t)

		runSession(t, manager, nil, "alice\nbob\n1\nr\nq\n")

		game := manager.GetGame(ctx)
		assert.Equal(t, [entity.BoardSize]string{}, game.Board)
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("New names", func(t *testing.T) {
		manager := newTestManager(t)

		runSession(t, manager, nil, "alice\nbob\n1\n4\n2\n5\n3\nn\ncarol\n\nq\n")

		game := manager.GetGame(ctx)
		assert.Equal(t, "carol", game.Players[0].Name)
		assert.Equal(t, entity.DefaultNameO, game.Players[1].Name)
	})

	t.Run("New names are refused mid-game", func(t *testing.T) {
		manager := newTestManager(t)

		output := runSession(t, manager, nil, "alice\nbob\n1\nn\nq\n")

		assert.Contains(t, output, apperror.ErrGameInProgress.Error())

		game := manager.GetGame(ctx)
		assert.Equal(t, "alice", game.Players[0].Name)
		assert.Equal(t, entity.PlayerX, game.Board[0])
	})

	t.Run("End of input quits", func(t *testing.T) {
		manager := newTestManager(t)

		runSession(t, manager, nil, "alice\n")

		assert.True(t, manager.GetGame(ctx).IsSetup())
	})
}

func TestSession_Bot(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)
	bot := service.NewBotService(rand.NewSource(1))

	// When: X moves once against the bot
	output := runSession(t, manager, bot, "alice\n1\nq\n")

	// Then: the bot has answered with exactly one O
	assert.Contains(t, output, "Bot takes")

	game := manager.GetGame(ctx)
	assert.Equal(t, "Bot", game.Players[1].Name)
	assert.Equal(t, entity.PlayerX, game.Board[0])
	assert.Equal(t, 1, strings.Count(strings.Join(game.Board[:], ""), entity.PlayerO))
	assert.Equal(t, entity.PlayerX, game.Turn)
}
