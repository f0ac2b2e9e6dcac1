package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: it waits for setup with an empty board and default names
	expectedGame := &Game{
		Turn:   PlayerX,
		Status: StatusSetup,
		Players: [2]Player{
			{Mark: PlayerX, Name: DefaultNameX},
			{Mark: PlayerO, Name: DefaultNameO},
		},
	}

	require.Equal(t, expectedGame, game)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsSetup returns true when game status is setup", func(t *testing.T) {
		game := &Game{Status: StatusSetup}

		assert.True(t, game.IsSetup())
		assert.False(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true for won and drawn games", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusWon}).IsFinished())
		assert.True(t, (&Game{Status: StatusDrawn}).IsFinished())
	})
}

func TestGame_Clear(t *testing.T) {
	// Given: a finished game with a winning line
	game := NewGame()
	game.Board = [BoardSize]string{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
	game.Status = StatusWon
	game.Winner = PlayerX
	game.WinningLine = []int{0, 1, 2}
	game.Turn = EmptyCell
	game.Players[0].Wins = 1
	game.Players[1].Losses = 1

	// When: the board is cleared
	game.Clear()

	// Then: the board is empty, X moves first and the tally survives
	assert.Equal(t, [BoardSize]string{}, game.Board)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.Nil(t, game.WinningLine)
	assert.Equal(t, 1, game.Players[0].Wins)
	assert.Equal(t, 1, game.Players[1].Losses)
}

func TestGame_Player(t *testing.T) {
	game := NewGame()

	require.NotNil(t, game.Player(PlayerX))
	assert.Equal(t, DefaultNameX, game.Player(PlayerX).Name)
	assert.Equal(t, DefaultNameO, game.Player(PlayerO).Name)
	assert.Nil(t, game.Player("Z"))

	// And: the returned pointer addresses the game's own player
	game.Player(PlayerO).Wins = 3
	assert.Equal(t, 3, game.Players[1].Wins)
}

func TestGame_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, NewGame().IsFull())
	})

	t.Run("Board with one empty cell is not full", func(t *testing.T) {
		game := &Game{Board: [BoardSize]string{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, EmptyCell,
		}}

		assert.False(t, game.IsFull())
	})

	t.Run("Board without empty cells is full", func(t *testing.T) {
		game := &Game{Board: [BoardSize]string{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}}

		assert.True(t, game.IsFull())
	})
}

func TestGame_Snapshot(t *testing.T) {
	// Given: a won game
	game := NewGame()
	game.Status = StatusWon
	game.WinningLine = []int{2, 4, 6}

	// When: a snapshot is taken and then mutated
	snapshot := game.Snapshot()
	snapshot.WinningLine[0] = 8
	snapshot.Board[0] = PlayerO
	snapshot.Players[0].Name = "changed"

	// Then: the original game is untouched
	assert.Equal(t, []int{2, 4, 6}, game.WinningLine)
	assert.Equal(t, EmptyCell, game.Board[0])
	assert.Equal(t, DefaultNameX, game.Players[0].Name)
}

func TestPlayer_Rename(t *testing.T) {
	t.Run("Same name keeps the tally", func(t *testing.T) {
		player := Player{Mark: PlayerX, Name: "alice", Wins: 2, Losses: 1}

		player.Rename("  alice ")

		assert.Equal(t, Player{Mark: PlayerX, Name: "alice", Wins: 2, Losses: 1}, player)
	})

	t.Run("New name resets the tally", func(t *testing.T) {
		player := Player{Mark: PlayerX, Name: "alice", Wins: 2, Losses: 1}

		player.Rename("bob")

		assert.Equal(t, Player{Mark: PlayerX, Name: "bob"}, player)
	})

	t.Run("Blank name falls back to the default of the mark", func(t *testing.T) {
		player := Player{Mark: PlayerO, Name: "carol", Wins: 1}

		player.Rename("   ")

		assert.Equal(t, Player{Mark: PlayerO, Name: DefaultNameO}, player)
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "alice", NormalizeName(" alice\t", PlayerX))
	assert.Equal(t, DefaultNameX, NormalizeName("", PlayerX))
	assert.Equal(t, DefaultNameO, NormalizeName(" ", PlayerO))
}
