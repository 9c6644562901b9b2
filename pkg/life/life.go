// Package life implements Conway's Game of Life on a bounded grid.
//
// Cells outside the grid count as permanently dead; there is no wraparound.
// Each generation is computed from a frozen copy of the previous one, so all
// cells update simultaneously.
package life

import (
	"fmt"
	"iter"

	"lifegrid/internal/core"
)

// Sentinel errors returned by New.
var (
	ErrInvalidDimension = core.ErrInvalidDimension
	ErrShapeMismatch    = core.ErrShapeMismatch
)

// Engine advances a Game of Life grid one generation at a time.
type Engine struct {
	w, h       int
	cur        *core.Grid
	nxt        *core.Grid
	neighbors  NeighborMap
	generation int
}

// New returns an engine holding a copy of initial at generation 0.
// It fails with ErrInvalidDimension when width or height is not positive and
// with ErrShapeMismatch when initial does not have the requested size. Cells
// other than 0 or 1 fail with core.ErrInvalidCell.
func New(width, height int, initial *core.Grid) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if initial == nil {
		return nil, fmt.Errorf("%w: nil initial state", ErrShapeMismatch)
	}
	if initial.Width() != width || initial.Height() != height {
		return nil, fmt.Errorf("%w: initial state is %dx%d, want %dx%d",
			ErrShapeMismatch, initial.Width(), initial.Height(), width, height)
	}
	for i, c := range initial.Cells() {
		if c > core.Alive {
			x, y := initial.Coord(i)
			return nil, fmt.Errorf("%w: (%d,%d)=%d", core.ErrInvalidCell, x, y, c)
		}
	}
	nxt, err := core.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Engine{
		w:         width,
		h:         height,
		cur:       initial.Clone(),
		nxt:       nxt,
		neighbors: ComputeNeighbors(width, height),
	}, nil
}

// NewFromRows builds an engine from rows indexed [y][x].
func NewFromRows(rows [][]uint8) (*Engine, error) {
	g, err := core.GridFromRows(rows)
	if err != nil {
		return nil, err
	}
	return New(g.Width(), g.Height(), g)
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Generation returns how many steps have been applied.
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Alive() }

// Cells exposes the current grid values for rendering. The slice is reused
// by the next Step and must not be modified.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Grid returns a snapshot of the current generation.
func (e *Engine) Grid() *core.Grid { return e.cur.Clone() }

// Neighbors returns the cached neighbour map.
func (e *Engine) Neighbors() NeighborMap { return e.neighbors }

// Step advances the simulation by one generation and returns a snapshot of
// the new grid.
func (e *Engine) Step() *core.Grid {
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for i := range cur {
		neighbors := 0
		for _, j := range e.neighbors.Of(i).Indices() {
			neighbors += int(cur[j])
		}
		alive := cur[i] == core.Alive
		nxt[i] = core.Dead
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			nxt[i] = core.Alive
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
	return e.cur.Clone()
}

// Run returns a lazy sequence of the next epochs generations. Each yielded
// grid is the result of one Step. The sequence is single-use: ranging over
// it a second time yields nothing, so replaying requires a new engine.
func (e *Engine) Run(epochs int) iter.Seq[*core.Grid] {
	used := false
	return func(yield func(*core.Grid) bool) {
		if used {
			return
		}
		used = true
		for i := 0; i < epochs; i++ {
			if !yield(e.Step()) {
				return
			}
		}
	}
}

// Parameters reports the engine's dimensions and progress.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", e.w),
				core.IntParam("h", "Height", e.h),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", e.generation),
				core.IntParam("population", "Population", e.Population()),
			},
		},
	}}
}
