package terrain

import (
	"math"

	"seedgen/internal/core"
)

// thermalErosion slides material from each cell to neighbours that sit more
// than talus below it. Deltas for a whole pass are gathered before any cell
// changes, and the pass conserves total mass.
func thermalErosion(f *core.Field, iterations int, talus, amount float64) {
	if f.Empty() {
		return
	}
	w, h := f.W, f.H
	heights := f.Cells()
	delta := make([]float64, len(heights))
	var diffs [8]float64

	for it := 0; it < iterations; it++ {
		clear(delta)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				here := heights[idx]
				total := 0.0
				for n, o := range core.D8 {
					diffs[n] = 0
					nx, ny := x+o.DX, y+o.DY
					if !f.InBounds(nx, ny) {
						continue
					}
					if d := here - heights[ny*w+nx]; d > talus {
						diffs[n] = d
						total += d
					}
				}
				if total <= 0 {
					continue
				}
				drop := amount * total
				for n, o := range core.D8 {
					if diffs[n] <= 0 {
						continue
					}
					share := drop * diffs[n] / total
					delta[(y+o.DY)*w+x+o.DX] += share
					delta[idx] -= share
				}
			}
		}
		for i := range heights {
			heights[i] += delta[i]
		}
	}
}

// carveRivers lowers land cells that carry at least threshold units of
// upstream flow, deeper where flow approaches the maximum.
func carveRivers(f *core.Field, waterFraction, threshold, strength float64) {
	if f.Empty() {
		return
	}
	lo, hi := f.MinMax()
	water := lo + math.Max(hi-lo, 1e-6)*waterFraction

	acc := accumulate(f, math.Inf(-1))
	maxFlow := 0.0
	for _, v := range acc.raw {
		maxFlow = math.Max(maxFlow, v)
	}
	if maxFlow <= 0 {
		return
	}
	heights := f.Cells()
	for i, v := range heights {
		if v <= water || acc.raw[i] < threshold {
			continue
		}
		heights[i] -= strength * math.Sqrt(acc.raw[i]/maxFlow)
	}
}
