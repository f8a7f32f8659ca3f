package cell

import "fmt"

// State is the two-valued state of one grid position
type State uint8

const (
	Dead State = iota
	Alive
)

// FromBool converts an alive flag into a State
func FromBool(alive bool) State {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the state is Alive
func (s State) IsAlive() bool {
	return s == Alive
}

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Coord addresses a cell by row and column, both in [0, size)
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// In reports whether the coordinate lies inside a size×size grid
func (c Coord) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}
