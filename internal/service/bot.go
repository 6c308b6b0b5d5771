package service

import (
	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/entity"
)

// Randomizer is the source of randomness for faction draws and opponent moves.
// *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

type BotService interface {
	ChooseCell(board entity.Board) (int, error)
}

type botService struct {
	rng Randomizer
}

func NewBotService(rng Randomizer) BotService {
	return &botService{rng: rng}
}

// ChooseCell - draws uniform indices until one lands on an empty cell.
func (that *botService) ChooseCell(board entity.Board) (int, error) {
	if !board.HasEmpty() {
		return 0, apperror.ErrNoAvailableMoves
	}

	for {
		index := that.rng.Intn(entity.BoardSize)
		if board[index].IsEmpty() {
			return index, nil
		}
	}
}
