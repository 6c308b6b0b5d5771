package window

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/event"
)

type Options struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// Window is a glfw window without a client graphics API. Every method except RequestClose must
// be called from the main thread.
type Window struct {
	logger *slog.Logger
	window *glfw.Window

	queue          []event.Event
	redrawPending  bool
	closeRequested atomic.Bool
	closed         bool
}

// New - initializes glfw and opens the window.
func New(logger *slog.Logger, opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrWindow, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))

	handle, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", apperror.ErrWindow, err)
	}

	that := &Window{
		logger: logger.With("component", "window"),
		window: handle,
	}
	that.registerCallbacks()

	width, height := handle.GetFramebufferSize()
	that.logger.Info("window created", "title", opts.Title, "width", width, "height", height)

	return that, nil
}

func (that *Window) registerCallbacks() {
	that.window.SetCloseCallback(func(*glfw.Window) {
		that.push(event.Close())
	})

	that.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		that.push(event.Resize(width, height))
	})

	that.window.SetContentScaleCallback(func(w *glfw.Window, _, _ float32) {
		width, height := w.GetFramebufferSize()
		that.push(event.ScaleChange(width, height))
	})

	that.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		logicalWidth, logicalHeight := w.GetSize()
		width, height := w.GetFramebufferSize()
		px, py := toPhysical(x, y, logicalWidth, logicalHeight, width, height)
		that.push(event.CursorMove(px, py))
	})

	that.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		that.push(event.Mouse(translateButton(button), translateAction(action)))
	})

	that.window.SetRefreshCallback(func(*glfw.Window) {
		that.RequestRedraw()
	})
}

func (that *Window) push(ev event.Event) {
	that.queue = append(that.queue, ev)
}

// SurfaceDescriptor - the native handle for creating a GPU surface on this window.
func (that *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(that.window)
}

// FramebufferSize - the current physical size.
func (that *Window) FramebufferSize() (int, int) {
	return that.window.GetFramebufferSize()
}

// RequestRedraw - schedules one redraw after the pending input events. Repeated requests
// before the redraw is delivered coalesce.
func (that *Window) RequestRedraw() {
	that.redrawPending = true
}

// RequestClose - asks the loop to deliver a close request. Safe from any goroutine.
func (that *Window) RequestClose() {
	that.closeRequested.Store(true)
	glfw.PostEmptyEvent()
}

// Run - pumps events into dispatch until it asks to stop or fails.
func (that *Window) Run(dispatch func(ev event.Event) (bool, error)) error {
	that.RequestRedraw()

	for {
		if that.redrawPending {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}

		if done, err := that.drain(dispatch); done {
			return err
		}
	}
}

// drain - delivers the queued events, then the pending redraw. done reports that the loop must end.
func (that *Window) drain(dispatch func(ev event.Event) (bool, error)) (bool, error) {
	if that.closeRequested.Load() {
		that.push(event.Close())
	}

	for len(that.queue) > 0 {
		ev := that.queue[0]
		that.queue = that.queue[1:]

		if stop, err := dispatch(ev); err != nil || stop {
			return true, err
		}
	}

	if that.redrawPending {
		that.redrawPending = false

		if stop, err := dispatch(event.Redraw()); err != nil || stop {
			return true, err
		}
	}

	return false, nil
}

// Close - destroys the window and terminates glfw. The GPU context must be shut down first.
func (that *Window) Close() {
	if that.closed {
		return
	}
	that.closed = true

	that.window.Destroy()
	glfw.Terminate()

	that.logger.Debug("window closed")
}

func boolHint(value bool) int {
	if value {
		return glfw.True
	}
	return glfw.False
}

// toPhysical - scales a logical cursor position to framebuffer pixels.
func toPhysical(x, y float64, logicalWidth, logicalHeight, width, height int) (float64, float64) {
	if logicalWidth <= 0 || logicalHeight <= 0 {
		return x, y
	}
	return x * float64(width) / float64(logicalWidth), y * float64(height) / float64(logicalHeight)
}

func translateButton(button glfw.MouseButton) event.Button {
	switch button {
	case glfw.MouseButtonLeft:
		return event.ButtonLeft
	case glfw.MouseButtonRight:
		return event.ButtonRight
	case glfw.MouseButtonMiddle:
		return event.ButtonMiddle
	default:
		return event.ButtonOther
	}
}

func translateAction(action glfw.Action) event.Action {
	if action == glfw.Release {
		return event.Released
	}
	return event.Pressed
}
