package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaction(t *testing.T) {
	t.Run("Ring goes first, cross does not", func(t *testing.T) {
		assert.True(t, Ring.GoesFirst())
		assert.False(t, Cross.GoesFirst())
	})

	t.Run("Opposite swaps factions", func(t *testing.T) {
		assert.Equal(t, Cross, Ring.Opposite())
		assert.Equal(t, Ring, Cross.Opposite())
	})

	t.Run("Cell maps faction to its mark", func(t *testing.T) {
		assert.Equal(t, CrossCell, Cross.Cell())
		assert.Equal(t, RingCell, Ring.Cell())
	})
}

func TestBoard_HasEmpty(t *testing.T) {
	t.Run("Zero board is all empty", func(t *testing.T) {
		// Given: a zero board
		var board Board

		// Then: every cell is empty
		assert.True(t, board.HasEmpty())
		assert.Equal(t, 0, board.Occupied())
	})

	t.Run("Full board has no empty cell", func(t *testing.T) {
		// Given: a board with every cell marked
		board := Board{
			RingCell, CrossCell, RingCell,
			RingCell, CrossCell, CrossCell,
			CrossCell, RingCell, RingCell,
		}

		// Then: no empty cell remains
		assert.False(t, board.HasEmpty())
		assert.Equal(t, BoardSize, board.Occupied())
	})
}

func TestBoard_Visibility(t *testing.T) {
	// Given: a board with two crosses and one ring
	board := Board{
		CrossCell, EmptyCell, RingCell,
		EmptyCell, CrossCell, EmptyCell,
		EmptyCell, EmptyCell, EmptyCell,
	}

	// When: asking for the visibility of each mark
	crosses := board.Visibility(CrossCell)
	rings := board.Visibility(RingCell)

	// Then: each flag follows exactly the cells holding that mark
	require.Len(t, crosses, BoardSize)
	assert.Equal(t, []bool{true, false, false, false, true, false, false, false, false}, crosses)
	assert.Equal(t, []bool{false, false, true, false, false, false, false, false, false}, rings)
}

func TestRoundSnapshot_JSON(t *testing.T) {
	// Given: a finished round won by ring
	board := Board{
		RingCell, RingCell, RingCell,
		CrossCell, CrossCell, EmptyCell,
		EmptyCell, EmptyCell, EmptyCell,
	}
	snapshot := NewRoundSnapshot(board, Ring, RoundOver, RingCell)

	// When: encoding the snapshot
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	// Then: the wire format carries printable marks and the state name
	assert.JSONEq(t, `{
		"board": ["O","O","O","X","X","","","",""],
		"human": "O",
		"state": "round_over",
		"winner": "O"
	}`, string(raw))
}
