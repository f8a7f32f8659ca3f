package model

import (
	"strings"
	"testing"

	"github.com/sheikhrachel/go-gol/cell"
)

// load builds a buffer from rows of '0'/'1' (or '.'/'#') characters
func load[B any](t *testing.T, enc Encoding[B], rows ...string) (B, int) {
	t.Helper()
	size := len(rows)
	buf := enc.Alloc(size)
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != size {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), size)
		}
		for j, ch := range row {
			enc.Set(buf, size, cell.Coord{Row: i, Col: j}, cell.FromBool(ch == '1' || ch == '#'))
		}
	}
	return buf, size
}

// dump renders a view as rows of '0'/'1' characters for comparisons
func dump(v View) []string {
	rows := make([]string, v.Size())
	for i, row := range Snapshot(v) {
		var b strings.Builder
		for _, alive := range row {
			if alive {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[i] = b.String()
	}
	return rows
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allAlive(size int) []string {
	rows := make([]string, size)
	for i := range rows {
		rows[i] = strings.Repeat("1", size)
	}
	return rows
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
