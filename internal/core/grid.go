package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("core: grid width and height must be positive")
	// ErrShapeMismatch indicates cell data that disagrees with the declared dimensions.
	ErrShapeMismatch = errors.New("core: cell data does not match grid dimensions")
	// ErrInvalidCell indicates a cell value other than 0 or 1.
	ErrInvalidCell = errors.New("core: cell values must be 0 or 1")
)

const (
	// Dead is the value of an empty cell.
	Dead uint8 = 0
	// Alive is the value of a live cell.
	Alive uint8 = 1
)

// Grid stores a fixed-size 2D grid of binary cells in row-major order.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// GridFromCells copies a row-major cell slice into a new grid.
func GridFromCells(w, h int, cells []uint8) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrShapeMismatch, len(cells), w, h)
	}
	for i, c := range cells {
		if c > Alive {
			x, y := g.Coord(i)
			return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrInvalidCell, x, y, c)
		}
	}
	copy(g.data, cells)
	return g, nil
}

// GridFromRows builds a grid from rows indexed [y][x]. All rows must share
// the same length.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimension)
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return GridFromCells(w, h, cells)
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice. Callers that hand the slice to someone
// else should Clone first.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coord converts a linear index back to (x, y).
func (g *Grid) Coord(i int) (x, y int) { return i % g.w, i / g.w }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At reports whether the cell at (x, y) is alive. Out-of-bounds cells are dead.
func (g *Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] == Alive
}

// Set updates the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	v := Dead
	if alive {
		v = Alive
	}
	g.data[g.Index(x, y)] = v
}

// Alive returns the number of live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as rows indexed [y][x].
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.h)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.data[y*g.w:(y+1)*g.w]...)
	}
	return rows
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[g.Index(x, y)] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
