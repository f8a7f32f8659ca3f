// Package gridfile reads and writes the plain-text grid format: the grid size N as the first
// whitespace-delimited token, followed by N×N cell values, each 0 or 1, in row-major order.
package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
	"github.com/sheikhrachel/go-gol/model"
)

var (
	// ErrMissingSize is returned when the input has no leading size token
	ErrMissingSize = errors.New("missing grid size")
	// ErrMissingCells is returned when the input ends before N×N values were read
	ErrMissingCells = errors.New("grid missing cells")
	// ErrInvalidCell is returned for a cell value other than 0 or 1
	ErrInvalidCell = errors.New("invalid cell value")
)

// MaxSize is the largest grid size the format accepts
const MaxSize = math.MaxUint16

// Layout is a decoded grid: Cells has Size rows of Size columns
type Layout struct {
	Size  int
	Cells [][]bool
}

// NewLayout returns an all-dead layout of the given size
func NewLayout(size int) Layout {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return Layout{Size: size, Cells: cells}
}

// Decode parses a grid from r. Tokens after the last cell are ignored.
func Decode(r io.Reader) (Layout, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Layout{}, errors.Wrap(err, "[Decode] failed to read size")
		}
		return Layout{}, errors.WithStack(ErrMissingSize)
	}
	size, err := strconv.Atoi(sc.Text())
	if err != nil {
		return Layout{}, errors.Wrapf(ErrMissingSize, "[Decode] size token %q is not an integer", sc.Text())
	}
	if size < 0 || size > MaxSize {
		return Layout{}, errors.Wrapf(model.ErrInvalidSize, "[Decode] size %d outside [0,%d]", size, MaxSize)
	}

	// Rows are allocated as they are reached so a bogus header cannot force a huge allocation
	layout := Layout{Size: size}
	for i := range size {
		layout.Cells = append(layout.Cells, make([]bool, size))
		for j := range size {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return Layout{}, errors.Wrapf(err, "[Decode] failed to read cell (%d,%d)", i, j)
				}
				return Layout{}, errors.Wrapf(ErrMissingCells,
					"[Decode] input ended at cell (%d,%d) of a %dx%d grid", i, j, size, size)
			}
			v, err := strconv.Atoi(sc.Text())
			if err != nil {
				return Layout{}, errors.Wrapf(ErrInvalidCell, "[Decode] cell (%d,%d) = %q", i, j, sc.Text())
			}
			if v != 0 && v != 1 {
				return Layout{}, errors.Wrapf(ErrInvalidCell, "[Decode] cell (%d,%d) = %d, valid values are 0 or 1", i, j, v)
			}
			layout.Cells[i][j] = v == 1
		}
	}
	return layout, nil
}

// Load decodes the grid file at path
func Load(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "[Load] failed to open file: %+v", path)
	}
	defer f.Close()

	layout, err := Decode(f)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "[Load] failed to parse file: %+v", path)
	}
	return layout, nil
}

// Encode writes a layout in the same format Decode reads
func Encode(w io.Writer, layout Layout) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", layout.Size)
	for _, row := range layout.Cells {
		for j, alive := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if alive {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "[Encode] failed to write grid")
	}
	return nil
}

// Save writes a layout to path, replacing any existing file
func Save(path string, layout Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create file: %+v", path)
	}
	if err = Encode(f, layout); err != nil {
		f.Close()
		return errors.Wrapf(err, "[Save] file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[Save] failed to close file: %+v", path)
}

// Fill allocates a buffer in enc and copies the layout into it. It fails when the encoding
// cannot hold a grid of this size.
func Fill[B any](enc model.Encoding[B], layout Layout) (B, error) {
	var zero B
	if err := enc.Validate(layout.Size); err != nil {
		return zero, errors.Wrapf(err, "[Fill] %s encoding", enc.Kind())
	}
	buf := enc.Alloc(layout.Size)
	for i, row := range layout.Cells {
		for j, alive := range row {
			enc.Set(buf, layout.Size, cell.Coord{Row: i, Col: j}, cell.FromBool(alive))
		}
	}
	return buf, nil
}

// FromView copies a grid view into a layout
func FromView(v model.View) Layout {
	return Layout{Size: v.Size(), Cells: model.Snapshot(v)}
}
