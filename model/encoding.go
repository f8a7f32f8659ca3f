package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
)

var (
	// ErrInvalidSize is returned for a negative grid size
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrSizeTooLarge is returned when a grid does not fit the encoding's row word
	ErrSizeTooLarge = errors.New("grid size exceeds encoding row width")
	// ErrUnknownEncoding is returned by ParseKind for names it does not recognise
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Kind identifies one of the grid encodings
type Kind uint8

const (
	// KindDense stores one byte per cell, row-major
	KindDense Kind = iota
	// KindPacked stores one 16-bit word per row, bit j for column j
	KindPacked
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindPacked:
		return "packed"
	}
	return "unknown"
}

// ParseKind maps an encoding name to its Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dense", "large":
		return KindDense, nil
	case "packed", "bitfield", "bitrow":
		return KindPacked, nil
	}
	return 0, errors.Wrapf(ErrUnknownEncoding, "[ParseKind] %q", name)
}

/*
Encoding is a strategy for storing a logical size×size boolean grid in a buffer of type B.

Implementations never allocate or free except in Alloc; every other method works over the
caller's buffer. Coordinates outside [0, size), a size the encoding cannot represent, or a
buffer too short for size are precondition violations and panic.
*/
type Encoding[B any] interface {
	// Kind returns the encoding identifier
	Kind() Kind
	// Validate reports whether size can be represented, without panicking
	Validate(size int) error
	// Alloc returns a cleared buffer for a size×size grid
	Alloc(size int) B
	// Read returns the state stored at c
	Read(buf B, size int, c cell.Coord) cell.State
	// NeighborLiveCount counts the live cells among the up to 8 in-grid neighbors of c
	NeighborLiveCount(buf B, size int, c cell.Coord) int
	// Clear resets every cell to dead
	Clear(buf B, size int)
	// Set stores s at c, overwriting whatever was there
	Set(buf B, size int, c cell.Coord, s cell.State)
	// Emit records a freshly computed state into a destination buffer that was cleared at
	// the start of the round
	Emit(buf B, size int, c cell.Coord, s cell.State)
}

func validateSize(op string, size int) error {
	if size < 0 {
		return errors.Wrapf(ErrInvalidSize, "[%s] size %d", op, size)
	}
	return nil
}

func mustCoord(op string, size int, c cell.Coord) {
	if !c.In(size) {
		panic(errors.Errorf("[%s] coordinate %v outside %dx%d grid", op, c, size, size))
	}
}

func mustLen(op string, have, want int) {
	if have < want {
		panic(errors.Errorf("[%s] buffer holds %d units, grid needs %d", op, have, want))
	}
}

/*
neighborhood lists the in-grid neighbors of c. The grid does not wrap, so the four sides are
handled explicitly: a corner yields 3 neighbors, a non-corner edge 5 and an interior cell 8.
*/
func neighborhood(size int, c cell.Coord) (ns [8]cell.Coord, n int) {
	var (
		hasUp    = c.Row > 0
		hasDown  = c.Row < size-1
		hasLeft  = c.Col > 0
		hasRight = c.Col < size-1
	)
	add := func(row, col int) {
		ns[n] = cell.Coord{Row: row, Col: col}
		n++
	}

	if hasUp {
		if hasLeft {
			add(c.Row-1, c.Col-1)
		}
		add(c.Row-1, c.Col)
		if hasRight {
			add(c.Row-1, c.Col+1)
		}
	}
	if hasLeft {
		add(c.Row, c.Col-1)
	}
	if hasRight {
		add(c.Row, c.Col+1)
	}
	if hasDown {
		if hasLeft {
			add(c.Row+1, c.Col-1)
		}
		add(c.Row+1, c.Col)
		if hasRight {
			add(c.Row+1, c.Col+1)
		}
	}
	return ns, n
}
