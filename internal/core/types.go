package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Area returns W*H, or 0 when either dimension is non-positive.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Offset is a relative grid step.
type Offset struct {
	DX, DY int
}

// D8 is the canonical 8-neighbour enumeration (row by row, top-left first).
// Every stage that breaks ties by "first discovered" walks neighbours in this
// order.
var D8 = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
