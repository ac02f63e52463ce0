package biome

// majorityFilter replaces every assigned cell with the most common biome in
// its 3×3 neighbourhood. Ties go to the lowest index.
//
// Unassigned cells stay unassigned and do not vote. Water therefore never
// gains a biome and coasts never erode into "none", at the cost of an
// isolated land pixel surrounded by sea keeping its biome.
func majorityFilter(src *Map, passes, biomes int) *Map {
	if src.Empty() || passes <= 0 || biomes <= 0 {
		return src.clone()
	}
	w, h := src.W, src.H
	curr := src.clone()
	next := src.clone()
	counts := make([]int, biomes)

	for pass := 0; pass < passes; pass++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				if curr.cells[idx] == none {
					next.cells[idx] = none
					continue
				}
				clear(counts)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						if v := curr.cells[ny*w+nx]; v != none {
							counts[v]++
						}
					}
				}
				best := 0
				for i := 1; i < biomes; i++ {
					if counts[i] > counts[best] {
						best = i
					}
				}
				next.cells[idx] = best
			}
		}
		curr, next = next, curr
	}
	return curr
}
