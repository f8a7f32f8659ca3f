package model

import (
	"github.com/sheikhrachel/go-gol/cell"
	"github.com/sheikhrachel/go-gol/rules"
)

/*
Step computes one generation of src into dst, visiting every cell in row-major order.

src and dst must be distinct buffers of the same encoding and size, and dst must have been
cleared since its last use: the Packed encoding only ever sets bits during a round.
*/
func Step[B any](enc Encoding[B], src, dst B, size int) {
	for i := range size {
		for j := range size {
			c := cell.Coord{Row: i, Col: j}
			next := rules.NextState(enc.Read(src, size, c), enc.NeighborLiveCount(src, size, c))
			enc.Emit(dst, size, c, next)
		}
	}
}
