package entity

// BoardSize is the number of cells on the board, indexed row-major 0..8.
const BoardSize = 9

// Cell is the content of one board field.
type Cell uint8

const (
	EmptyCell Cell = iota
	CrossCell
	RingCell
)

// IsEmpty - returns whether no faction occupies the cell.
func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) String() string {
	switch that {
	case CrossCell:
		return "X"
	case RingCell:
		return "O"
	default:
		return ""
	}
}

// Faction is one side of a round.
type Faction uint8

const (
	Cross Faction = iota
	Ring
)

// GoesFirst - ring always makes the first turn.
func (that Faction) GoesFirst() bool {
	return that == Ring
}

// Opposite - returns the other faction.
func (that Faction) Opposite() Faction {
	if that == Cross {
		return Ring
	}
	return Cross
}

// Cell - returns the mark this faction leaves on the board.
func (that Faction) Cell() Cell {
	if that == Cross {
		return CrossCell
	}
	return RingCell
}

func (that Faction) String() string {
	return that.Cell().String()
}

// RoundState is the state of the round state machine.
type RoundState uint8

const (
	InRound RoundState = iota
	RoundOver
)

func (that RoundState) String() string {
	if that == RoundOver {
		return "round_over"
	}
	return "in_round"
}

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the nine cells of a round. The zero value is an empty board.
type Board [BoardSize]Cell

// HasEmpty - reports whether at least one cell is still free.
func (that *Board) HasEmpty() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return true
		}
	}
	return false
}

// Occupied - counts the cells holding any mark.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Visibility returns one flag per cell, true where the cell holds the given mark.
func (that *Board) Visibility(mark Cell) []bool {
	visible := make([]bool, BoardSize)
	for i, cell := range that {
		visible[i] = cell == mark
	}
	return visible
}

// Marks - returns the board as its printable marks.
func (that *Board) Marks() [BoardSize]string {
	var marks [BoardSize]string
	for i, cell := range that {
		marks[i] = cell.String()
	}
	return marks
}

// RoundSnapshot is the observable state of a round after a board change.
type RoundSnapshot struct {
	Board  [BoardSize]string `json:"board"`
	Human  string            `json:"human"`
	State  string            `json:"state"`
	Winner string            `json:"winner"`
}

func NewRoundSnapshot(board Board, human Faction, state RoundState, winner Cell) RoundSnapshot {
	return RoundSnapshot{
		Board:  board.Marks(),
		Human:  human.String(),
		State:  state.String(),
		Winner: winner.String(),
	}
}
