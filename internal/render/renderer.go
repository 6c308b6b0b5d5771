package render

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictacgpu/internal/entity"
)

// Frame is one acquired surface image with its command recording.
type Frame interface {
	// BeginPass opens the single render pass of the frame, cleared to clear.
	BeginPass(clear Color) (Pass, error)
	Submit() error
	Present()
	Release()
}

type FrameSource interface {
	AcquireFrame() (Frame, error)
}

type Palette struct {
	Background Color
	RoundOver  Color
	Grid       Color
	Cross      Color
	Ring       Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: Color{0.04, 0.09, 0.09, 1},
		RoundOver:  Color{0.3, 0.35, 0.35, 1},
		Grid:       Color{0.55, 0.65, 0.65, 1},
		Cross:      Color{0.27, 0.87, 0.7, 1},
		Ring:       Color{0.76, 0.3, 1.0, 1},
	}
}

// Renderer owns the board shapes and the background color.
type Renderer struct {
	logger  *slog.Logger
	palette Palette

	grid  *Shape
	cross *Shape
	ring  *Shape

	roundOver bool
}

// NewRenderer - uploads the grid, cross and ring shapes. The grid is always visible.
func NewRenderer(logger *slog.Logger, allocator Allocator, palette Palette) (*Renderer, error) {
	that := &Renderer{
		logger:  logger.With("component", "renderer"),
		palette: palette,
	}

	var err error
	if that.grid, err = NewShape(allocator, "grid", GridGeometry(palette.Grid), [][2]float32{{0, 0}}); err != nil {
		return nil, err
	}
	that.grid.SetActive([]bool{true})

	if that.cross, err = NewShape(allocator, "cross", CrossGeometry(palette.Cross), CellPositions()); err != nil {
		that.Release()
		return nil, err
	}

	if that.ring, err = NewShape(allocator, "ring", RingGeometry(palette.Ring), CellPositions()); err != nil {
		that.Release()
		return nil, err
	}

	return that, nil
}

// UpdateBoard - recomputes which cross and ring instances are visible.
func (that *Renderer) UpdateBoard(board entity.Board) {
	that.cross.SetActive(board.Visibility(entity.CrossCell))
	that.ring.SetActive(board.Visibility(entity.RingCell))
}

// SetRoundOver - swaps the clear color.
func (that *Renderer) SetRoundOver(over bool) {
	if that.roundOver != over {
		that.logger.Debug("background swapped", "round_over", over)
	}
	that.roundOver = over
}

func (that *Renderer) Background() Color {
	if that.roundOver {
		return that.palette.RoundOver
	}
	return that.palette.Background
}

// DrawFrame - acquire, clear, draw grid then pieces, submit, present.
// Acquisition errors are returned unchanged so the caller can tell a stale surface from a fatal one.
func (that *Renderer) DrawFrame(source FrameSource) error {
	frame, err := source.AcquireFrame()
	if err != nil {
		return err
	}
	defer frame.Release()

	pass, err := frame.BeginPass(that.Background())
	if err != nil {
		return fmt.Errorf("failed begin render pass: %w", err)
	}

	for _, shape := range that.shapes() {
		shape.Draw(pass)
	}

	if err = pass.End(); err != nil {
		return fmt.Errorf("failed end render pass: %w", err)
	}

	if err = frame.Submit(); err != nil {
		return fmt.Errorf("failed submit frame: %w", err)
	}

	frame.Present()

	return nil
}

// shapes in draw order.
func (that *Renderer) shapes() []*Shape {
	return []*Shape{that.grid, that.cross, that.ring}
}

func (that *Renderer) Release() {
	for _, shape := range that.shapes() {
		if shape != nil {
			shape.Release()
		}
	}
}
