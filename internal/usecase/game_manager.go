package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/entity"
	"github.com/rocketscienceinc/tictacgpu/internal/service"
	"github.com/rocketscienceinc/tictacgpu/internal/tictactoe"
)

// boardView is the rendering side of a round. It is called synchronously on every change.
type boardView interface {
	UpdateBoard(board entity.Board)
	SetRoundOver(over bool)
}

// RoundFeed receives a snapshot after every board change. A nil feed is allowed.
type RoundFeed interface {
	Publish(snapshot entity.RoundSnapshot) error
}

// GameManager is the round state machine: InRound until the board is terminal, then RoundOver
// until the next click resets it.
type GameManager struct {
	logger *slog.Logger
	rng    service.Randomizer
	bot    service.BotService
	view   boardView
	feed   RoundFeed

	board  entity.Board
	human  entity.Faction
	state  entity.RoundState
	winner entity.Cell
	rounds int
}

// NewGameManager - creates the state machine and starts the first round.
func NewGameManager(
	logger *slog.Logger,
	rng service.Randomizer,
	bot service.BotService,
	view boardView,
	feed RoundFeed,
) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		rng:    rng,
		bot:    bot,
		view:   view,
		feed:   feed,
	}

	manager.startRound()

	return manager
}

// ApplyMove - places the human mark at index and lets the opponent answer.
// In RoundOver any click starts a new round. Returns whether the board changed.
func (that *GameManager) ApplyMove(index int) bool {
	log := that.logger.With("method", "ApplyMove", "index", index)

	if that.state == entity.RoundOver {
		that.Reset()
		return true
	}

	if err := that.place(that.human.Cell(), index); err != nil {
		if isRejected(err) {
			log.Debug("move ignored", "error", err)
		} else {
			log.Error("failed to apply move", "error", err)
		}
		return false
	}

	if that.state == entity.InRound {
		that.opponentMove()
	}

	return true
}

// Reset - clears the board in place, draws a new human faction and returns to InRound.
func (that *GameManager) Reset() {
	that.logger.Debug("round reset", "round", that.rounds)

	that.view.SetRoundOver(false)
	that.startRound()
}

func (that *GameManager) IsRoundOver() bool {
	return that.state == entity.RoundOver
}

func (that *GameManager) State() entity.RoundState {
	return that.state
}

// Board - returns a copy of the current board.
func (that *GameManager) Board() entity.Board {
	return that.board
}

func (that *GameManager) HumanFaction() entity.Faction {
	return that.human
}

// Winner - the mark that completed a line, EmptyCell while in round or after a draw.
func (that *GameManager) Winner() entity.Cell {
	return that.winner
}

func (that *GameManager) startRound() {
	that.board = entity.Board{}
	that.state = entity.InRound
	that.winner = entity.EmptyCell
	that.rounds++

	that.human = entity.Cross
	if that.rng.Intn(2) == 1 {
		that.human = entity.Ring
	}

	that.logger.Debug("round started", "round", that.rounds, "human", that.human.String())
	that.notify()

	if !that.human.GoesFirst() {
		that.opponentMove()
	}
}

func (that *GameManager) opponentMove() {
	index, err := that.bot.ChooseCell(that.board)
	if err != nil {
		that.logger.Error("opponent could not move", "error", err)
		return
	}

	if err = that.place(that.human.Opposite().Cell(), index); err != nil {
		that.logger.Error("opponent move rejected", "index", index, "error", err)
	}
}

// place - the single mutation entry point for the board.
func (that *GameManager) place(mark entity.Cell, index int) error {
	if that.state == entity.RoundOver {
		return apperror.ErrRoundOver
	}

	if err := tictactoe.MakeTurn(&that.board, mark, index); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	if winner, terminal := tictactoe.DetermineResult(that.board); terminal {
		that.state = entity.RoundOver
		that.winner = winner
	}

	that.notify()

	if that.state == entity.RoundOver {
		that.view.SetRoundOver(true)
		that.logRoundEnd()
	}

	return nil
}

func (that *GameManager) notify() {
	that.view.UpdateBoard(that.board)

	if that.feed == nil {
		return
	}

	snapshot := entity.NewRoundSnapshot(that.board, that.human, that.state, that.winner)
	if err := that.feed.Publish(snapshot); err != nil {
		that.logger.Warn("failed to publish round snapshot", "error", err)
	}
}

func (that *GameManager) logRoundEnd() {
	log := that.logger.With("round", that.rounds, "human", that.human.String())

	switch {
	case that.winner.IsEmpty():
		log.Info("round over", "result", "draw")
	case that.winner == that.human.Cell():
		log.Info("round over", "result", "human won", "winner", that.winner.String())
	default:
		log.Info("round over", "result", "opponent won", "winner", that.winner.String())
	}
}

// isRejected - reports whether err is one of the silent input rejections.
func isRejected(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrRoundOver)
}
