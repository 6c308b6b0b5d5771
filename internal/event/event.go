package event

// Kind identifies a window or input event.
type Kind uint8

const (
	CloseRequested Kind = iota
	Resized
	ScaleFactorChanged
	CursorMoved
	MouseInput
	RedrawRequested
)

func (that Kind) String() string {
	switch that {
	case CloseRequested:
		return "close_requested"
	case Resized:
		return "resized"
	case ScaleFactorChanged:
		return "scale_factor_changed"
	case CursorMoved:
		return "cursor_moved"
	case MouseInput:
		return "mouse_input"
	case RedrawRequested:
		return "redraw_requested"
	default:
		return "unknown"
	}
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

type Action uint8

const (
	Pressed Action = iota
	Released
)

// Event is one window event. Sizes and positions are in physical pixels, positions relative to
// the top-left corner with Y pointing down.
type Event struct {
	Kind Kind

	Width  int
	Height int

	X float64
	Y float64

	Button Button
	Action Action
}

func Close() Event {
	return Event{Kind: CloseRequested}
}

func Resize(width, height int) Event {
	return Event{Kind: Resized, Width: width, Height: height}
}

func ScaleChange(width, height int) Event {
	return Event{Kind: ScaleFactorChanged, Width: width, Height: height}
}

func CursorMove(x, y float64) Event {
	return Event{Kind: CursorMoved, X: x, Y: y}
}

func Mouse(button Button, action Action) Event {
	return Event{Kind: MouseInput, Button: button, Action: action}
}

func Redraw() Event {
	return Event{Kind: RedrawRequested}
}
