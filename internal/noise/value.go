package noise

import "math"

// Lattice value noise with a SplitMix64 hash. No tables, so construction is
// free and any seed is valid.

type valueSource struct {
	seed int64
}

// NewValue returns smooth value noise.
func NewValue(seed int64) Source {
	return valueSource{seed: seed}
}

func (s valueSource) Eval2(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := fade(x - x0)
	fy := fade(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, s.seed)
	v10 := latticeValue(ix+1, iy, s.seed)
	v01 := latticeValue(ix, iy+1, s.seed)
	v11 := latticeValue(ix+1, iy+1, s.seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy)*2 - 1
}

// Hash01 returns a uniform value in [0,1] for an integer cell and seed.
func Hash01(x, y int64, seed int64) float64 {
	return latticeValue(x, y, seed)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x, y int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y int64, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}
