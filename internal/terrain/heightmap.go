package terrain

import "seedgen/internal/core"

// Heightmap is a finished, normalized elevation grid. Values lie in [0,1]
// and the map is never mutated after generation.
type Heightmap struct {
	W, H   int
	values []float32
}

// NewHeightmap wraps row-major values. Callers must not retain values.
func NewHeightmap(w, h int, values []float32) *Heightmap {
	if w <= 0 || h <= 0 || len(values) != w*h {
		return &Heightmap{}
	}
	return &Heightmap{W: w, H: h, values: values}
}

// Size reports the grid dimensions.
func (m *Heightmap) Size() core.Size { return core.Size{W: m.W, H: m.H} }

// Empty reports whether the map has zero area.
func (m *Heightmap) Empty() bool { return len(m.values) == 0 }

// Get returns the normalized height at (x, y).
func (m *Heightmap) Get(x, y int) float32 { return m.values[y*m.W+x] }

// Values exposes the row-major cells for encoders. Do not modify.
func (m *Heightmap) Values() []float32 { return m.values }

func (m *Heightmap) field() *core.Field {
	data := make([]float64, len(m.values))
	for i, v := range m.values {
		data[i] = float64(v)
	}
	return core.FieldFrom(m.W, m.H, data)
}
