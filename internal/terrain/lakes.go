package terrain

import (
	"seedgen/internal/core"
	"seedgen/internal/noise"
)

// lakeRadius is the half-width of the 5×5 bank blend around a lake centre.
const lakeRadius = 2

// fillLakes raises interior pits toward their rim. Pits are detected on a
// snapshot so a lake filled earlier in the pass cannot create or hide another.
func fillLakes(f *core.Field, src noise.Source, p Params) int {
	if f.Empty() || f.W < 3 || f.H < 3 {
		return 0
	}
	w, h := f.W, f.H
	snap := f.Clone()
	base := snap.Cells()
	heights := f.Cells()
	lakes := 0

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			here := base[y*w+x]
			sum := 0.0
			pit := true
			for _, o := range core.D8 {
				nh := base[(y+o.DY)*w+x+o.DX]
				if nh <= here {
					pit = false
					break
				}
				sum += nh
			}
			if !pit {
				continue
			}
			depth := sum/8 - here
			if depth <= p.LakeMinDepth {
				continue
			}
			if noise.To01(src.Eval2(float64(x)*0.37, float64(y)*0.37)) >= p.LakeChance {
				continue
			}
			target := here + p.LakeFill*depth
			for dy := -lakeRadius; dy <= lakeRadius; dy++ {
				for dx := -lakeRadius; dx <= lakeRadius; dx++ {
					nx, ny := x+dx, y+dy
					if !f.InBounds(nx, ny) {
						continue
					}
					d := max(abs(dx), abs(dy))
					weight := 1 - float64(d)/float64(lakeRadius+1)
					i := ny*w + nx
					if heights[i] < target {
						heights[i] += (target - heights[i]) * weight
					}
				}
			}
			lakes++
		}
	}
	return lakes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
