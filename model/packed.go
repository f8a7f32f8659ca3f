package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
)

// PackedRowBits is the width of a Packed row word and so the largest Packed grid size
const PackedRowBits = 16

/*
Packed stores one uint16 per row; bit j of row i is the state of cell (i, j).

Sizes above PackedRowBits cannot be represented. Shifting a 16-bit word by 16 or more would
silently drop columns, so those sizes are rejected instead.
*/
type Packed struct{}

var _ Encoding[[]uint16] = Packed{}

// Kind returns KindPacked
func (Packed) Kind() Kind { return KindPacked }

// Validate accepts sizes in [0, PackedRowBits]
func (Packed) Validate(size int) error {
	if err := validateSize("Packed.Validate", size); err != nil {
		return err
	}
	if size > PackedRowBits {
		return errors.Wrapf(ErrSizeTooLarge, "[Packed.Validate] size %d, row word holds %d", size, PackedRowBits)
	}
	return nil
}

// Alloc returns size zeroed row words
func (p Packed) Alloc(size int) []uint16 {
	p.mustSize(size)
	return make([]uint16, size)
}

func (p Packed) mustSize(size int) {
	if err := p.Validate(size); err != nil {
		panic(err)
	}
}

func (p Packed) check(op string, buf []uint16, size int, c cell.Coord) {
	p.mustSize(size)
	mustLen(op, len(buf), size)
	mustCoord(op, size, c)
}

func bit(col int) uint16 {
	return 1 << uint(col)
}

// Read returns alive iff the bit for c is set
func (p Packed) Read(buf []uint16, size int, c cell.Coord) cell.State {
	p.check("Packed.Read", buf, size, c)
	return cell.FromBool(buf[c.Row]&bit(c.Col) != 0)
}

// NeighborLiveCount sums the live in-grid neighbors of c
func (p Packed) NeighborLiveCount(buf []uint16, size int, c cell.Coord) int {
	p.check("Packed.NeighborLiveCount", buf, size, c)

	count := 0
	ns, n := neighborhood(size, c)
	for _, nb := range ns[:n] {
		if buf[nb.Row]&bit(nb.Col) != 0 {
			count++
		}
	}
	return count
}

// Clear zeroes size row words
func (p Packed) Clear(buf []uint16, size int) {
	p.mustSize(size)
	mustLen("Packed.Clear", len(buf), size)
	clear(buf[:size])
}

// Set sets or clears the bit for c
func (p Packed) Set(buf []uint16, size int, c cell.Coord, s cell.State) {
	p.check("Packed.Set", buf, size, c)
	if s.IsAlive() {
		buf[c.Row] |= bit(c.Col)
	} else {
		buf[c.Row] &^= bit(c.Col)
	}
}

// Emit only sets bits; a dead state leaves the pre-cleared bit at 0
func (p Packed) Emit(buf []uint16, size int, c cell.Coord, s cell.State) {
	p.check("Packed.Emit", buf, size, c)
	if s.IsAlive() {
		buf[c.Row] |= bit(c.Col)
	}
}
