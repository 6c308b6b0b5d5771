package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/event"
	"github.com/rocketscienceinc/tictacgpu/internal/render"
)

const gridDivisions = 3

type round interface {
	ApplyMove(index int) bool
	Reset()
	IsRoundOver() bool
}

type frameDrawer interface {
	DrawFrame(source render.FrameSource) error
}

type gpuContext interface {
	render.FrameSource
	Reconfigure(width, height int)
}

type window interface {
	FramebufferSize() (width, height int)
	RequestRedraw()
}

// Cell is a grid coordinate in render space: column from the left, row from the bottom.
type Cell struct {
	Col int
	Row int
}

func (that Cell) Index() int {
	return that.Row*gridDivisions + that.Col
}

type handler func(ev event.Event) (stop bool, err error)

// Dispatcher routes window events to the round, the renderer and the GPU context.
type Dispatcher struct {
	logger *slog.Logger

	round    round
	renderer frameDrawer
	gpu      gpuContext
	window   window

	hovered  Cell
	handlers map[event.Kind]handler
}

func New(logger *slog.Logger, round round, renderer frameDrawer, gpu gpuContext, window window) *Dispatcher {
	that := &Dispatcher{
		logger:   logger.With("component", "dispatcher"),
		round:    round,
		renderer: renderer,
		gpu:      gpu,
		window:   window,
		hovered:  Cell{Col: 1, Row: 1},
	}

	that.handlers = map[event.Kind]handler{
		event.CloseRequested:     that.handleClose,
		event.Resized:            that.handleResize,
		event.ScaleFactorChanged: that.handleResize,
		event.CursorMoved:        that.handleCursor,
		event.MouseInput:         that.handleMouse,
		event.RedrawRequested:    that.handleRedraw,
	}

	return that
}

// Dispatch - handles one event. stop is true when the loop must end; err is set only for
// fatal failures.
func (that *Dispatcher) Dispatch(ev event.Event) (bool, error) {
	handle, ok := that.handlers[ev.Kind]
	if !ok {
		return false, nil
	}

	return handle(ev)
}

// Hovered - the cell under the pointer, the center until the pointer moves.
func (that *Dispatcher) Hovered() Cell {
	return that.hovered
}

func (that *Dispatcher) handleClose(event.Event) (bool, error) {
	that.logger.Info("close requested")
	return true, nil
}

func (that *Dispatcher) handleResize(ev event.Event) (bool, error) {
	that.gpu.Reconfigure(ev.Width, ev.Height)
	that.window.RequestRedraw()
	return false, nil
}

func (that *Dispatcher) handleCursor(ev event.Event) (bool, error) {
	width, height := that.window.FramebufferSize()
	if cell, ok := CellAt(ev.X, ev.Y, width, height); ok {
		that.hovered = cell
	}
	return false, nil
}

func (that *Dispatcher) handleMouse(ev event.Event) (bool, error) {
	if ev.Button != event.ButtonLeft || ev.Action != event.Released {
		return false, nil
	}

	var changed bool
	if that.round.IsRoundOver() {
		that.round.Reset()
		changed = true
	} else {
		changed = that.round.ApplyMove(that.hovered.Index())
	}

	if changed {
		that.window.RequestRedraw()
	}

	return false, nil
}

func (that *Dispatcher) handleRedraw(event.Event) (bool, error) {
	err := that.renderer.DrawFrame(that.gpu)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, apperror.ErrSurfaceOutdated):
		width, height := that.window.FramebufferSize()
		that.logger.Debug("surface outdated, reconfiguring", "width", width, "height", height)
		that.gpu.Reconfigure(width, height)
		if width > 0 && height > 0 {
			that.window.RequestRedraw()
		}
		return false, nil
	default:
		that.logger.Error("failed to draw frame", "error", err)
		return true, fmt.Errorf("failed draw frame: %w", err)
	}
}

// CellAt maps a pointer position to a grid cell. Positions outside the window are rejected.
// The vertical axis is flipped: the top of the window is row 2.
func CellAt(x, y float64, width, height int) (Cell, bool) {
	if width <= 0 || height <= 0 {
		return Cell{}, false
	}

	if x < 0 || y < 0 || x >= float64(width) || y >= float64(height) {
		return Cell{}, false
	}

	col := int(x * gridDivisions / float64(width))
	row := gridDivisions - 1 - int(y*gridDivisions/float64(height))

	return Cell{Col: min(col, gridDivisions-1), Row: max(row, 0)}, true
}
