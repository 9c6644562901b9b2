package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Sim is the read-only view renderers and HUDs need of a running simulation.
type Sim interface {
	Name() string
	Size() Size
	Generation() int
	Population() int
	Cells() []uint8
}
