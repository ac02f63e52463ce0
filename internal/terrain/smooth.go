package terrain

import "seedgen/internal/core"

var gaussKernel = [3][3]float64{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// smooth blurs interior cells with a 3×3 Gaussian. Border cells are copied
// through unchanged. Passes alternate between two buffers.
func smooth(f *core.Field, iterations int) {
	if f.Empty() || iterations <= 0 {
		return
	}
	w, h := f.W, f.H
	curr := f.Clone()
	next := f.Clone()
	for it := 0; it < iterations; it++ {
		src := curr.Cells()
		dst := next.Cells()
		copy(dst, src)
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				sum := 0.0
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						sum += src[(y+ky)*w+x+kx] * gaussKernel[ky+1][kx+1]
					}
				}
				dst[y*w+x] = sum / 16
			}
		}
		curr, next = next, curr
	}
	f.CopyFrom(curr)
}
