package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-gol/cell"
)

// View is a read-only window onto a logical grid, independent of its encoding
type View interface {
	Size() int
	Alive(c cell.Coord) bool
}

type boundView[B any] struct {
	enc  Encoding[B]
	buf  B
	size int
}

// Bind wraps a buffer and its encoding as a View. The view reads through to buf; it does not copy.
func Bind[B any](enc Encoding[B], buf B, size int) View {
	return boundView[B]{enc: enc, buf: buf, size: size}
}

func (v boundView[B]) Size() int { return v.size }

func (v boundView[B]) Alive(c cell.Coord) bool {
	return v.enc.Read(v.buf, v.size, c).IsAlive()
}

// Snapshot copies a view into a row-major boolean matrix
func Snapshot(v View) [][]bool {
	size := v.Size()
	rows := make([][]bool, size)
	for i := range size {
		rows[i] = make([]bool, size)
		for j := range size {
			rows[i][j] = v.Alive(cell.Coord{Row: i, Col: j})
		}
	}
	return rows
}

// CountLiving returns the total number of living cells
func CountLiving(v View) (count int) {
	size := v.Size()
	for i := range size {
		for j := range size {
			if v.Alive(cell.Coord{Row: i, Col: j}) {
				count++
			}
		}
	}
	return
}

// Equal reports whether two views hold the same logical grid
func Equal(a, b View) bool {
	if a.Size() != b.Size() {
		return false
	}
	size := a.Size()
	for i := range size {
		for j := range size {
			c := cell.Coord{Row: i, Col: j}
			if a.Alive(c) != b.Alive(c) {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid's row-major 0/1 content
func Hash(v View) string {
	h := md5.New()
	size := v.Size()
	fmt.Fprintf(h, "%d:", size)
	for i := range size {
		for j := range size {
			if v.Alive(cell.Coord{Row: i, Col: j}) {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
