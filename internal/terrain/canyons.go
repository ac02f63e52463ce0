package terrain

import (
	"math"

	"seedgen/internal/core"
	"seedgen/internal/noise"
)

// carveCanyons cuts V-shaped notches where the zero crossings of two fault
// fields meet. Cells at or below the shallow-water guard are left alone.
func carveCanyons(f *core.Field, a, b noise.Source, p Params) {
	if f.Empty() {
		return
	}
	w, h := f.W, f.H
	lo, hi := f.MinMax()
	guard := lo + (hi-lo)*p.WaterFraction
	heights := f.Cells()
	delta := make([]float64, len(heights))
	span := math.Max(1-p.CanyonThreshold, 1e-6)
	freq := 6 / float64(max(w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if heights[idx] <= guard {
				continue
			}
			fx, fy := float64(x)*freq, float64(y)*freq
			rf := 1 - math.Abs(a.Eval2(fx, fy))
			crf := 1 - math.Abs(b.Eval2(fx, fy))
			combined := math.Pow(rf*crf, p.CanyonPower)
			if combined <= p.CanyonThreshold {
				continue
			}
			centre := p.CanyonStrength * (combined - p.CanyonThreshold) / span
			delta[idx] -= centre
			for _, o := range core.D8 {
				nx, ny := x+o.DX, y+o.DY
				if !f.InBounds(nx, ny) || heights[ny*w+nx] <= guard {
					continue
				}
				dist := math.Hypot(float64(o.DX), float64(o.DY))
				delta[ny*w+nx] -= centre * 0.5 / dist
			}
		}
	}
	for i := range heights {
		heights[i] += delta[i]
	}
}
