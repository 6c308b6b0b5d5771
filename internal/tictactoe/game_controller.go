package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/entity"
)

// MakeTurn - places mark at index. The board is left untouched when the move is rejected.
func MakeTurn(board *entity.Board, mark entity.Cell, index int) error {
	if err := validateMove(board, index); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	board[index] = mark

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, index int) error {
	if index < 0 || index >= entity.BoardSize {
		return apperror.ErrInvalidCell
	}

	if !board[index].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// DetermineResult - reports whether the round is over and who completed a line.
// A full board with no line is terminal with an empty winner.
func DetermineResult(board entity.Board) (entity.Cell, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a, true
		}
	}

	return entity.EmptyCell, !board.HasEmpty()
}

// IsTerminal - a round ends on a full board or a completed line.
func IsTerminal(board entity.Board) bool {
	_, terminal := DetermineResult(board)
	return terminal
}
