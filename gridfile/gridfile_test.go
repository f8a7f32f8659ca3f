package gridfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/cell"
	"github.com/sheikhrachel/go-gol/model"
)

func TestDecode(t *testing.T) {
	layout, err := Decode(strings.NewReader("3\n0 1 0\n1 1 1\n0 0 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if layout.Size != 3 {
		t.Fatalf("size = %d", layout.Size)
	}
	want := [][]bool{{false, true, false}, {true, true, true}, {false, false, false}}
	for i := range want {
		for j := range want[i] {
			if layout.Cells[i][j] != want[i][j] {
				t.Fatalf("cell (%d,%d) = %v", i, j, layout.Cells[i][j])
			}
		}
	}
}

func TestDecodeIgnoresLayoutWhitespace(t *testing.T) {
	layout, err := Decode(strings.NewReader("  2 1\t0\n\n0 1 extra tokens"))
	if err != nil {
		t.Fatal(err)
	}
	if !layout.Cells[0][0] || layout.Cells[0][1] || layout.Cells[1][0] || !layout.Cells[1][1] {
		t.Fatalf("cells = %v", layout.Cells)
	}
}

func TestDecodeEmptyGrid(t *testing.T) {
	layout, err := Decode(strings.NewReader("0\n"))
	if err != nil || layout.Size != 0 || len(layout.Cells) != 0 {
		t.Fatalf("layout = %+v, err = %v", layout, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrMissingSize},
		{"size not a number", "three\n", ErrMissingSize},
		{"negative size", "-2\n", model.ErrInvalidSize},
		{"size above maximum", "65536 1 0", model.ErrInvalidSize},
		{"size overflows allocation", "4611686018427387904 1 0", model.ErrInvalidSize},
		{"large size with few cells", "100000 1 0", model.ErrInvalidSize},
		{"maximum size with few cells", "65535 1 0", ErrMissingCells},
		{"missing cell", "3\n0 1 0\n1 1\n", ErrMissingCells},
		{"value 2", "2\n0 2\n0 0\n", ErrInvalidCell},
		{"value -1", "2\n0 -1\n0 0\n", ErrInvalidCell},
		{"not a number", "2\n0 x\n0 0\n", ErrInvalidCell},
	}
	for _, tc := range cases {
		_, err := Decode(strings.NewReader(tc.input))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := "3\n0 1 0\n1 1 1\n0 0 1\n"
	layout, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err = Encode(&out, layout); err != nil {
		t.Fatal(err)
	}
	if out.String() != in {
		t.Fatalf("got %q, want %q", out.String(), in)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid")

	layout := NewLayout(2)
	layout.Cells[1][0] = true
	if err := Save(path, layout); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2\n0 0\n1 0\n" {
		t.Fatalf("file = %q", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Cells[1][0] || loaded.Cells[0][0] {
		t.Fatalf("cells = %v", loaded.Cells)
	}

	if _, err = Load(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}

func TestLoadTestdata(t *testing.T) {
	if _, err := Load("../testdata/input"); err != nil {
		t.Fatalf("input: %v", err)
	}
	for name, want := range map[string]error{
		"invalid_game_1": ErrMissingCells,
		"invalid_game_2": ErrInvalidCell,
		"invalid_game_3": ErrInvalidCell,
	} {
		if _, err := Load("../testdata/" + name); !errors.Is(err, want) {
			t.Errorf("%s: err = %v, want %v", name, err, want)
		}
	}
}

func TestFill(t *testing.T) {
	layout, err := Decode(strings.NewReader("3\n1 0 0\n0 1 0\n0 0 1\n"))
	if err != nil {
		t.Fatal(err)
	}

	dense, err := Fill[[]uint8](model.Dense{}, layout)
	if err != nil {
		t.Fatal(err)
	}
	packed, err := Fill[[]uint16](model.Packed{}, layout)
	if err != nil {
		t.Fatal(err)
	}
	dv := model.Bind[[]uint8](model.Dense{}, dense, 3)
	pv := model.Bind[[]uint16](model.Packed{}, packed, 3)
	if !model.Equal(dv, pv) || !dv.Alive(cell.Coord{Row: 2, Col: 2}) {
		t.Fatal("filled buffers disagree with layout")
	}

	back := FromView(pv)
	for i := range layout.Cells {
		for j := range layout.Cells[i] {
			if back.Cells[i][j] != layout.Cells[i][j] {
				t.Fatalf("FromView mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestFillRejectsOversizedPacked(t *testing.T) {
	_, err := Fill[[]uint16](model.Packed{}, NewLayout(model.PackedRowBits+1))
	if !errors.Is(err, model.ErrSizeTooLarge) {
		t.Fatalf("err = %v, want ErrSizeTooLarge", err)
	}
	if _, err = Fill[[]uint8](model.Dense{}, NewLayout(model.PackedRowBits+1)); err != nil {
		t.Fatalf("dense err = %v", err)
	}
}
