package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

type BotService interface {
	ChooseCell(game entity.Game) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot that picks a random empty cell. A nil source seeds from the clock.
func NewBotService(source rand.Source) BotService {
	if source == nil {
		source = rand.NewSource(rand.Int63()) //nolint: gosec // it's ok
	}

	return &botService{
		rnd: rand.New(source), //nolint: gosec // it's ok
	}
}

func (that *botService) ChooseCell(game entity.Game) (int, error) {
	availableCells := make([]int, 0, len(game.Board))
	for i, cell := range game.Board {
		if cell == entity.EmptyCell {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}
