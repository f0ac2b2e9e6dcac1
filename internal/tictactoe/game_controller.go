package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

// GameController owns the single active session. It is not safe for concurrent use;
// callers serialize access.
type GameController struct {
	game *entity.Game
}

func NewGameController(game *entity.Game) *GameController {
	if game == nil {
		game = entity.NewGame()
	}

	return &GameController{game: game}
}

// Setup names both players and starts a fresh board. Names change only between games,
// an ongoing game is left untouched and apperror.ErrGameInProgress is returned.
func (that *GameController) Setup(nameX, nameO string) (entity.Game, error) {
	if that.game.IsOngoing() {
		return that.game.Snapshot(), apperror.ErrGameInProgress
	}

	that.game.Player(entity.PlayerX).Rename(nameX)
	that.game.Player(entity.PlayerO).Rename(nameO)
	that.game.Clear()

	return that.game.Snapshot(), nil
}

// Restart clears the board and keeps both players with their tally.
func (that *GameController) Restart() entity.Game {
	that.game.Clear()

	return that.game.Snapshot()
}

func (that *GameController) State() entity.Game {
	return that.game.Snapshot()
}

// MakeTurn places the current mark on cell. A rejected move leaves the session untouched
// and returns an error wrapping apperror.ErrInvalidMove together with the current state.
func (that *GameController) MakeTurn(cell int) (entity.Game, error) {
	if err := validateMove(that.game, cell); err != nil {
		return that.game.Snapshot(), fmt.Errorf("invalid turn on cell %d: %w", cell, err)
	}

	mark := that.game.Turn
	that.game.Board[cell] = mark
	updateGameStatus(that.game, mark)

	return that.game.Snapshot(), nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	switch {
	case game.IsSetup():
		return apperror.ErrGameIsNotStarted
	case game.IsFinished():
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(game.Board) {
		return apperror.ErrInvalidCell
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move of mark.
func updateGameStatus(game *entity.Game, mark string) {
	if line, ok := winningLine(game.Board, mark); ok {
		game.Status = entity.StatusWon
		game.Winner = mark
		game.WinningLine = line[:]
		game.Turn = entity.EmptyCell

		game.Player(mark).Wins++
		game.Player(toggleMark(mark)).Losses++

		return
	}

	if game.IsFull() {
		game.Status = entity.StatusDrawn
		game.Turn = entity.EmptyCell

		return
	}

	game.Turn = toggleMark(mark)
}

func winningLine(board [entity.BoardSize]string, mark string) ([3]int, bool) {
	for _, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return combo, true
		}
	}

	return [3]int{}, false
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
