package terrain

import (
	"math"
	"sort"

	"seedgen/internal/core"
)

// FlowField holds D8 flow accumulation for a grid.
type FlowField struct {
	W, H int
	raw  []float64
	norm []float32
	down []int
}

// Get returns the flow at (x, y) normalized by the maximum.
func (ff *FlowField) Get(x, y int) float32 { return ff.norm[y*ff.W+x] }

// Raw returns the unnormalized accumulation: 1 for the cell itself plus every
// cell that drains through it.
func (ff *FlowField) Raw(x, y int) float64 { return ff.raw[y*ff.W+x] }

// Downslope returns the index of the neighbour (x, y) drains into, or -1.
func (ff *FlowField) Downslope(x, y int) int { return ff.down[y*ff.W+x] }

// Empty reports whether the field has zero area.
func (ff *FlowField) Empty() bool { return len(ff.raw) == 0 }

// Values exposes the normalized cells in row-major order. Do not modify.
func (ff *FlowField) Values() []float32 { return ff.norm }

// FlowAccumulation routes water over a finished heightmap. Cells at or below
// seaLevel neither route nor receive a target of their own, but they still
// collect inflow from land above them.
func FlowAccumulation(hm *Heightmap, seaLevel float64) *FlowField {
	if hm == nil || hm.Empty() {
		return &FlowField{}
	}
	return accumulate(hm.field(), seaLevel)
}

// accumulate is the shared D8 engine. Only cells strictly above waterLevel
// pick a downslope neighbour; a neighbour qualifies when strictly lower and
// the steepest drop wins, first in D8 order on ties.
func accumulate(f *core.Field, waterLevel float64) *FlowField {
	if f.Empty() {
		return &FlowField{}
	}
	w, h := f.W, f.H
	heights := f.Cells()
	n := len(heights)
	down := make([]int, n)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			down[idx] = -1
			here := heights[idx]
			if here <= waterLevel {
				continue
			}
			best := 0.0
			for _, o := range core.D8 {
				nx, ny := x+o.DX, y+o.DY
				if !f.InBounds(nx, ny) {
					continue
				}
				nidx := ny*w + nx
				if d := here - heights[nidx]; d > best {
					best = d
					down[idx] = nidx
				}
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return heights[order[a]] > heights[order[b]]
	})

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = 1
	}
	for _, idx := range order {
		if t := down[idx]; t >= 0 {
			raw[t] += raw[idx]
		}
	}

	maxFlow := 0.0
	for _, v := range raw {
		maxFlow = math.Max(maxFlow, v)
	}
	norm := make([]float32, n)
	for i, v := range raw {
		norm[i] = float32(v / maxFlow)
	}
	return &FlowField{W: w, H: h, raw: raw, norm: norm, down: down}
}
