package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the only error class the engine reports; every rejected move wraps it.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrGameFinished     = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrGameIsNotStarted = fmt.Errorf("%w: game is not started", ErrInvalidMove)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell      = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
)

var (
	ErrGameInProgress   = errors.New("players can only be changed between games")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownStorage   = errors.New("unknown storage driver")
	ErrInvalidLimit     = errors.New("limit must be a positive number")
)
