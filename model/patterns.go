package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
)

// ErrUnknownPattern is returned by ParsePattern for names it does not recognise
var ErrUnknownPattern = errors.New("unknown seed pattern")

// Pattern names how a grid without an input file is seeded
type Pattern string

const (
	// PatternRandom fills every cell at random
	PatternRandom Pattern = "random"
	// PatternShowcase places a glider, a blinker and a block on an empty grid
	PatternShowcase Pattern = "showcase"
	// PatternMixed randomizes the grid, then places the showcase patterns over it
	PatternMixed Pattern = "mixed"
)

// ParsePattern maps a seed pattern name to its Pattern; empty means random
func ParsePattern(name string) (Pattern, error) {
	switch p := Pattern(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return PatternRandom, nil
	case PatternRandom, PatternShowcase, PatternMixed:
		return p, nil
	}
	return "", errors.Wrapf(ErrUnknownPattern, "[ParsePattern] %q", name)
}

// Seeder writes patterns into a buffer. Cells falling outside the grid are dropped, never wrapped.
type Seeder[B any] struct {
	enc  Encoding[B]
	buf  B
	size int
}

func NewSeeder[B any](enc Encoding[B], buf B, size int) Seeder[B] {
	return Seeder[B]{enc: enc, buf: buf, size: size}
}

// Set sets a cell to alive (true) or dead (false)
func (s Seeder[B]) Set(row, col int, alive bool) {
	c := cell.Coord{Row: row, Col: col}
	if c.In(s.size) {
		s.enc.Set(s.buf, s.size, c, cell.FromBool(alive))
	}
}

// AddBlock adds a 2x2 still-life with its top-left corner at (row, col)
func (s Seeder[B]) AddBlock(row, col int) {
	s.Set(row, col, true)
	s.Set(row, col+1, true)
	s.Set(row+1, col, true)
	s.Set(row+1, col+1, true)
}

// AddBlinker adds a horizontal period-2 oscillator starting at (row, col)
func (s Seeder[B]) AddBlinker(row, col int) {
	s.Set(row, col, true)
	s.Set(row, col+1, true)
	s.Set(row, col+2, true)
}

// AddGlider adds a glider pattern at the specified position
func (s Seeder[B]) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, alive := range line {
			s.Set(row+dr, col+dc, alive)
		}
	}
}

// Randomize overwrites every cell, each alive with probability density. The same seed
// always produces the same grid.
func (s Seeder[B]) Randomize(density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range s.size {
		for j := range s.size {
			s.Set(i, j, rng.Float64() < density)
		}
	}
}

/*
AddShowcase places the patterns that fit: a glider in the top-left from size 5, a blinker
along the bottom and a block in the bottom-right from size 8. Grids of size 2 to 4 get a
single block in the corner.
*/
func (s Seeder[B]) AddShowcase() {
	switch {
	case s.size >= 8:
		s.AddGlider(1, 1)
		s.AddBlinker(s.size-2, 1)
		s.AddBlock(s.size-3, s.size-3)
	case s.size >= 5:
		s.AddGlider(1, 1)
	case s.size >= 2:
		s.AddBlock(0, 0)
	}
}

// Seed fills the grid according to pattern
func (s Seeder[B]) Seed(pattern Pattern, density float64, seed int64) error {
	switch pattern {
	case PatternRandom, "":
		s.Randomize(density, seed)
	case PatternShowcase:
		s.enc.Clear(s.buf, s.size)
		s.AddShowcase()
	case PatternMixed:
		s.Randomize(density, seed)
		s.AddShowcase()
	default:
		return errors.Wrapf(ErrUnknownPattern, "[Seeder.Seed] %q", pattern)
	}
	return nil
}
