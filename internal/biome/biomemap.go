package biome

import "seedgen/internal/core"

const none = -1

// Map assigns each cell an optional index into the configured biome list.
type Map struct {
	W, H  int
	cells []int
}

// NewMap allocates a map with every cell unassigned.
func NewMap(w, h int) *Map {
	if w <= 0 || h <= 0 {
		return &Map{}
	}
	cells := make([]int, w*h)
	for i := range cells {
		cells[i] = none
	}
	return &Map{W: w, H: h, cells: cells}
}

// Size reports the grid dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.W, H: m.H} }

// Empty reports whether the map has zero area.
func (m *Map) Empty() bool { return len(m.cells) == 0 }

// Get returns the biome index at (x, y). ok is false for water or cells no
// biome could be assigned to.
func (m *Map) Get(x, y int) (idx int, ok bool) {
	v := m.cells[y*m.W+x]
	return v, v != none
}

// Set assigns biome idx to (x, y).
func (m *Map) Set(x, y, idx int) { m.cells[y*m.W+x] = idx }

// Clear marks (x, y) as having no biome.
func (m *Map) Clear(x, y int) { m.cells[y*m.W+x] = none }

// Equal reports whether two maps hold the same assignments.
func (m *Map) Equal(o *Map) bool {
	if m.W != o.W || m.H != o.H || len(m.cells) != len(o.cells) {
		return false
	}
	for i, v := range m.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Diff counts the cells whose assignment differs between two equally sized maps.
func (m *Map) Diff(o *Map) int {
	n := 0
	for i, v := range m.cells {
		if o.cells[i] != v {
			n++
		}
	}
	return n
}

func (m *Map) clone() *Map {
	return &Map{W: m.W, H: m.H, cells: append([]int(nil), m.cells...)}
}

// Histogram counts cells per biome index. Cells without a biome are
// returned separately.
func Histogram(m *Map, biomes int) (counts []int, unassigned int) {
	counts = make([]int, biomes)
	for _, v := range m.cells {
		if v == none || v >= biomes {
			unassigned++
			continue
		}
		counts[v]++
	}
	return counts, unassigned
}
