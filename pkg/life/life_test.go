package life

import (
	"testing"

	"lifegrid/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	initial, err := core.NewGrid(5, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	initial.Set(2, 1, true)
	initial.Set(2, 2, true)
	initial.Set(2, 3, true)

	life, err := New(5, 5, initial)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := life.Size().W

	life.Step()
	cells := life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if life.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", life.Generation())
	}
}

func TestBlinkerOnEdgeDoesNotWrap(t *testing.T) {
	// A horizontal blinker along the top row loses its upper half to the
	// boundary: on a torus it would oscillate, here it collapses to a
	// vertical pair that then dies.
	life, err := NewFromRows([][]uint8{
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	g := life.Step()
	if !g.At(2, 0) || !g.At(2, 1) || g.Alive() != 2 {
		t.Fatalf("after one step got\n%s", g)
	}
	if g.At(2, 4) {
		t.Fatal("birth leaked across the bottom edge")
	}
	if g = life.Step(); g.Alive() != 0 {
		t.Fatalf("pair should die of under-population, got\n%s", g)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	life, err := NewFromRows([][]uint8{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}
	before := life.Grid()
	for i := 0; i < 4; i++ {
		if g := life.Step(); !g.Equal(before) {
			t.Fatalf("block changed at generation %d:\n%s", life.Generation(), g)
		}
	}
}
