package model

import (
	"github.com/sheikhrachel/go-gol/cell"
)

// Dense stores one uint8 per cell in a flat row-major buffer of length size*size
type Dense struct{}

var _ Encoding[[]uint8] = Dense{}

// Kind returns KindDense
func (Dense) Kind() Kind { return KindDense }

// Validate accepts any non-negative size
func (Dense) Validate(size int) error {
	return validateSize("Dense.Validate", size)
}

// Alloc returns a zeroed size*size buffer
func (d Dense) Alloc(size int) []uint8 {
	if err := d.Validate(size); err != nil {
		panic(err)
	}
	return make([]uint8, size*size)
}

func (Dense) index(op string, buf []uint8, size int, c cell.Coord) int {
	mustLen(op, len(buf), size*size)
	mustCoord(op, size, c)
	return c.Row*size + c.Col
}

// Read returns alive iff the stored value at c is 1
func (d Dense) Read(buf []uint8, size int, c cell.Coord) cell.State {
	return cell.FromBool(buf[d.index("Dense.Read", buf, size, c)] == 1)
}

// NeighborLiveCount sums the live in-grid neighbors of c
func (d Dense) NeighborLiveCount(buf []uint8, size int, c cell.Coord) int {
	d.index("Dense.NeighborLiveCount", buf, size, c)

	count := 0
	ns, n := neighborhood(size, c)
	for _, nb := range ns[:n] {
		if buf[nb.Row*size+nb.Col] == 1 {
			count++
		}
	}
	return count
}

// Clear zeroes size*size elements
func (Dense) Clear(buf []uint8, size int) {
	mustLen("Dense.Clear", len(buf), size*size)
	clear(buf[:size*size])
}

// Set stores 1 for alive and 0 for dead
func (d Dense) Set(buf []uint8, size int, c cell.Coord, s cell.State) {
	buf[d.index("Dense.Set", buf, size, c)] = denseValue(s)
}

// Emit writes the element directly; Dense does not depend on the pre-clear
func (d Dense) Emit(buf []uint8, size int, c cell.Coord, s cell.State) {
	buf[d.index("Dense.Emit", buf, size, c)] = denseValue(s)
}

func denseValue(s cell.State) uint8 {
	if s.IsAlive() {
		return 1
	}
	return 0
}
