package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictacgpu/internal/entity"
	"github.com/rocketscienceinc/tictacgpu/internal/service"
	mockedUseCase "github.com/rocketscienceinc/tictacgpu/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

// scriptedRandomizer replays a fixed sequence of draws: the first decides the human
// faction (0 cross, 1 ring), the rest are opponent cell draws.
type scriptedRandomizer struct {
	draws []int
	calls int
}

func (that *scriptedRandomizer) Intn(n int) int {
	draw := that.draws[that.calls%len(that.draws)] % n
	that.calls++
	return draw
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, view *mockedUseCase.MockboardView, draws ...int) *GameManager {
	t.Helper()

	rng := &scriptedRandomizer{draws: draws}
	return NewGameManager(newTestLogger(), rng, service.NewBotService(rng), view, nil)
}

func boardWith(marks map[int]entity.Cell) entity.Board {
	var board entity.Board
	for index, mark := range marks {
		board[index] = mark
	}
	return board
}

func TestGameManager_NewRound(t *testing.T) {
	t.Run("Human ring moves first on an empty board", func(t *testing.T) {
		// Given: a view expecting the empty starting board
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Once()

		// When: the first draw picks ring for the human
		manager := newTestManager(t, view, 1)

		// Then: nobody has moved yet
		assert.Equal(t, entity.Ring, manager.HumanFaction())
		assert.Equal(t, entity.InRound, manager.State())
		assert.Equal(t, entity.Board{}, manager.Board())
	})

	t.Run("Human cross lets the opponent open", func(t *testing.T) {
		// Given: a view expecting the empty board and then the opponent's opening
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Once()
		view.EXPECT().UpdateBoard(boardWith(map[int]entity.Cell{4: entity.RingCell})).Return().Once()

		// When: the first draw picks cross for the human and the opponent draws the center
		manager := newTestManager(t, view, 0, 4)

		// Then: the opponent's ring is already on the board
		assert.Equal(t, entity.Cross, manager.HumanFaction())
		assert.Equal(t, entity.RingCell, manager.Board()[4])
		assert.Equal(t, 1, manager.Board().Occupied())
		assert.False(t, manager.IsRoundOver())
	})
}

func TestGameManager_ApplyMove(t *testing.T) {
	t.Run("Human move is answered by the opponent", func(t *testing.T) {
		// Given: a fresh round with the human as ring
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Once()
		view.EXPECT().UpdateBoard(boardWith(map[int]entity.Cell{0: entity.RingCell})).Return().Once()
		view.EXPECT().
			UpdateBoard(boardWith(map[int]entity.Cell{0: entity.RingCell, 4: entity.CrossCell})).
			Return().
			Once()

		// The opponent first draws the occupied cell 0, then 4.
		manager := newTestManager(t, view, 1, 0, 4)

		// When: the human plays the bottom-left cell
		changed := manager.ApplyMove(0)

		// Then: two cells are taken and the round goes on
		require.True(t, changed)
		board := manager.Board()
		assert.Equal(t, 2, board.Occupied())
		assert.Equal(t, entity.RingCell, board[0])
		assert.Equal(t, entity.CrossCell, board[4])
		assert.Equal(t, entity.InRound, manager.State())
	})

	t.Run("Move on an occupied cell is a no-op", func(t *testing.T) {
		// Given: a round where the human already played 0 and the opponent 4
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(mock.Anything).Return().Times(3)
		manager := newTestManager(t, view, 1, 4)
		require.True(t, manager.ApplyMove(0))
		before := manager.Board()

		// When: the human clicks both taken cells
		changedOwn := manager.ApplyMove(0)
		changedOpponent := manager.ApplyMove(4)

		// Then: nothing changed and the view was not notified again
		assert.False(t, changedOwn)
		assert.False(t, changedOpponent)
		assert.Equal(t, before, manager.Board())
	})

	t.Run("Move outside the board is a no-op", func(t *testing.T) {
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Once()
		manager := newTestManager(t, view, 1)

		assert.False(t, manager.ApplyMove(-1))
		assert.False(t, manager.ApplyMove(entity.BoardSize))
		assert.Equal(t, entity.Board{}, manager.Board())
	})

	t.Run("Completed line ends the round", func(t *testing.T) {
		// Given: the human as ring, the opponent answering 3 and then 4
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(mock.Anything).Return().Times(6)
		view.EXPECT().SetRoundOver(true).Return().Once()
		manager := newTestManager(t, view, 1, 3, 4)

		// When: the human fills the bottom row
		manager.ApplyMove(0)
		manager.ApplyMove(1)
		manager.ApplyMove(2)

		// Then: the round is over, won by ring, and the opponent did not answer
		assert.True(t, manager.IsRoundOver())
		assert.Equal(t, entity.RingCell, manager.Winner())
		assert.Equal(t, 5, manager.Board().Occupied())
	})
}

func TestGameManager_Reset(t *testing.T) {
	t.Run("Click while round over starts a new round", func(t *testing.T) {
		// Given: a finished round
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(mock.Anything).Return().Times(6)
		view.EXPECT().SetRoundOver(true).Return().Once()
		manager := newTestManager(t, view, 1, 3, 4, 0, 8)
		manager.ApplyMove(0)
		manager.ApplyMove(1)
		manager.ApplyMove(2)
		require.True(t, manager.IsRoundOver())
		finished := manager.Board()

		// The new round draws cross for the human and the opponent opens at 8.
		view.EXPECT().SetRoundOver(false).Return().Once()
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Once()
		view.EXPECT().UpdateBoard(boardWith(map[int]entity.Cell{8: entity.RingCell})).Return().Once()

		// When: the human clicks any cell
		changed := manager.ApplyMove(5)

		// Then: the board is cleared except for the opponent's opening and play resumes
		require.True(t, changed)
		assert.Equal(t, entity.InRound, manager.State())
		assert.Equal(t, entity.Cross, manager.HumanFaction())
		assert.Equal(t, boardWith(map[int]entity.Cell{8: entity.RingCell}), manager.Board())
		assert.Equal(t, entity.EmptyCell, manager.Winner())
		assert.NotEqual(t, finished, manager.Board())
	})

	t.Run("Reset with ring human leaves an empty board", func(t *testing.T) {
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(entity.Board{}).Return().Twice()
		view.EXPECT().SetRoundOver(false).Return().Once()
		manager := newTestManager(t, view, 1)

		manager.Reset()

		assert.Equal(t, entity.Board{}, manager.Board())
		assert.Equal(t, entity.Ring, manager.HumanFaction())
	})
}

func TestGameManager_Feed(t *testing.T) {
	t.Run("Every board change publishes a snapshot", func(t *testing.T) {
		// Given: a view and a feed
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(mock.Anything).Return().Times(3)
		feed := mockedUseCase.NewMockRoundFeed(t)
		feed.EXPECT().Publish(mock.AnythingOfType("entity.RoundSnapshot")).Return(nil).Times(2)

		var last entity.RoundSnapshot
		feed.EXPECT().
			Publish(mock.AnythingOfType("entity.RoundSnapshot")).
			Run(func(snapshot entity.RoundSnapshot) { last = snapshot }).
			Return(nil).
			Once()

		rng := &scriptedRandomizer{draws: []int{1, 4}}
		manager := NewGameManager(newTestLogger(), rng, service.NewBotService(rng), view, feed)

		// When: the human plays and the opponent answers
		manager.ApplyMove(0)

		// Then: the last snapshot carries both marks
		assert.Equal(t, "O", last.Human)
		assert.Equal(t, "in_round", last.State)
		assert.Equal(t, "O", last.Board[0])
		assert.Equal(t, "X", last.Board[4])
	})

	t.Run("Publish failure does not affect the round", func(t *testing.T) {
		view := mockedUseCase.NewMockboardView(t)
		view.EXPECT().UpdateBoard(mock.Anything).Return().Times(3)
		feed := mockedUseCase.NewMockRoundFeed(t)
		feed.EXPECT().Publish(mock.Anything).Return(errRedisDown).Times(3)

		rng := &scriptedRandomizer{draws: []int{1, 4}}
		manager := NewGameManager(newTestLogger(), rng, service.NewBotService(rng), view, feed)

		require.True(t, manager.ApplyMove(0))
		assert.Equal(t, 2, manager.Board().Occupied())
	})
}
