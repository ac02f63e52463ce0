package core

// Field stores a 2D grid of float64 cell values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions. Non-positive
// dimensions produce an empty field.
func NewField(w, h int) *Field {
	if w <= 0 || h <= 0 {
		return &Field{}
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// FieldFrom wraps an existing slice. The slice must hold w*h values.
func FieldFrom(w, h int, data []float64) *Field {
	if w <= 0 || h <= 0 || len(data) != w*h {
		return &Field{}
	}
	return &Field{W: w, H: h, data: data}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Field) Cells() []float64 { return f.data }

// Len reports the number of cells.
func (f *Field) Len() int { return len(f.data) }

// Empty reports whether the field has zero area.
func (f *Field) Empty() bool { return len(f.data) == 0 }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// InBounds reports whether (x, y) lies inside the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

// At returns the value stored at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	out := &Field{W: f.W, H: f.H}
	if len(f.data) > 0 {
		out.data = append([]float64(nil), f.data...)
	}
	return out
}

// CopyFrom overwrites the receiver with src. Sizes must match.
func (f *Field) CopyFrom(src *Field) {
	copy(f.data, src.data)
}

// MinMax returns the smallest and largest values. An empty field reports 0, 0.
func (f *Field) MinMax() (float64, float64) {
	if len(f.data) == 0 {
		return 0, 0
	}
	lo, hi := f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Sum returns the total of all cells.
func (f *Field) Sum() float64 {
	total := 0.0
	for _, v := range f.data {
		total += v
	}
	return total
}
