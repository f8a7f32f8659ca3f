package model

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	digitAlive = "1 "
	digitDead  = "0 "
)

// ErrUnknownRenderer is returned by NewRenderer for unsupported styles
var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderer writes a textual picture of a grid. Round 0 is the initial grid.
type Renderer interface {
	Render(w io.Writer, round int, v View) error
}

// NewRenderer returns the renderer for a style name: "digits" or "blocks"
func NewRenderer(style string) (Renderer, error) {
	switch style {
	case "", "digits":
		return DigitRenderer{}, nil
	case "blocks":
		return BlockRenderer{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownRenderer, "[NewRenderer] %q", style)
}

// DigitRenderer prints each cell as 0 or 1 followed by a space
type DigitRenderer struct{}

// Render writes a round header followed by one line per row
func (DigitRenderer) Render(w io.Writer, round int, v View) error {
	return render(w, round, v, digitAlive, digitDead)
}

// BlockRenderer prints living cells as solid blocks
type BlockRenderer struct{}

// Render writes a round header followed by one line per row
func (BlockRenderer) Render(w io.Writer, round int, v View) error {
	return render(w, round, v, gridPosBlock, gridPosEmpty)
}

func render(w io.Writer, round int, v View, alive, dead string) error {
	var b strings.Builder
	if round == 0 {
		b.WriteString("Initial grid")
	} else {
		b.WriteString("After round ")
		b.WriteString(strconv.Itoa(round))
	}
	b.WriteString(", size=")
	b.WriteString(strconv.Itoa(v.Size()))
	b.WriteByte('\n')

	size := v.Size()
	for i := range size {
		for j := range size {
			if v.Alive(cell.Coord{Row: i, Col: j}) {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrapf(err, "[render] failed to write round %d", round)
	}
	return nil
}

// RenderReporter adapts a Renderer to a Reporter. The first write error is kept in Err and
// later rounds are not written.
type RenderReporter struct {
	Renderer Renderer
	W        io.Writer
	Err      error
}

// Report renders the round unless an earlier write failed
func (r *RenderReporter) Report(round int, v View) {
	if r.Err != nil {
		return
	}
	r.Err = r.Renderer.Render(r.W, round, v)
}
