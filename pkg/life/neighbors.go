package life

// Neighborhood lists the in-bounds neighbours of one cell as linear indices.
// A cell has at most eight neighbours, so the list is stored inline.
type Neighborhood struct {
	idx [8]int32
	n   uint8
}

// Len returns the number of neighbours.
func (nb *Neighborhood) Len() int { return int(nb.n) }

// Indices returns the neighbour indices in row-major scan order.
func (nb *Neighborhood) Indices() []int32 { return nb.idx[:nb.n] }

// NeighborMap maps every linear cell index of a w×h grid to its bounded
// Moore neighbourhood. It depends only on the dimensions and never changes
// once built.
type NeighborMap struct {
	w, h  int
	cells []Neighborhood
}

// ComputeNeighbors builds the neighbour map for a w×h grid without
// wraparound. Non-positive dimensions yield an empty map.
func ComputeNeighbors(w, h int) NeighborMap {
	if w <= 0 || h <= 0 {
		return NeighborMap{}
	}
	m := NeighborMap{w: w, h: h, cells: make([]Neighborhood, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nb := &m.cells[y*w+x]
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
						continue
					}
					nb.idx[nb.n] = int32(ny*w + nx)
					nb.n++
				}
			}
		}
	}
	return m
}

// Len returns the number of cells covered by the map.
func (m NeighborMap) Len() int { return len(m.cells) }

// Of returns the neighbourhood of the cell with linear index i.
func (m NeighborMap) Of(i int) *Neighborhood { return &m.cells[i] }

// At returns the neighbour coordinates of (x, y) as [2]int{x, y} pairs.
// Out-of-bounds queries return nil.
func (m NeighborMap) At(x, y int) [][2]int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return nil
	}
	nb := &m.cells[y*m.w+x]
	out := make([][2]int, 0, nb.n)
	for _, i := range nb.Indices() {
		out = append(out, [2]int{int(i) % m.w, int(i) / m.w})
	}
	return out
}
