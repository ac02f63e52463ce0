package terrain

import (
	"math"

	"seedgen/internal/core"
)

const flatEpsilon = 1e-6

// normalize rescales raw elevation to [0,1] and applies gamma. A flat field
// maps to all zeros.
func normalize(f *core.Field, gamma float64) []float32 {
	out := make([]float32, f.Len())
	if f.Empty() {
		return out
	}
	lo, hi := f.MinMax()
	span := hi - lo
	if span <= 0 {
		span = flatEpsilon
	}
	for i, v := range f.Cells() {
		x := clamp((v-lo)/span, 0, 1)
		out[i] = float32(math.Pow(x, gamma))
	}
	return out
}
