// Package noise provides deterministic scalar fields over continuous 2D
// coordinates. Every Source is a pure function of its seed and the sample
// position, so generation stages may sample it from any goroutine.
package noise

import "sort"

// Source is a seeded 2D noise field with values in [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// Factory constructs a Source for the given seed.
type Factory func(seed int64) Source

// Default is the kind used when a configuration does not name one.
const Default = "perlin"

var kinds = map[string]Factory{}

// Register adds a noise factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	kinds[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := kinds[name]
	return f, ok
}

// MustLookup returns the named factory, falling back to Default.
func MustLookup(name string) Factory {
	if f, ok := kinds[name]; ok {
		return f
	}
	return kinds[Default]
}

// Kinds lists registered names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// To01 maps a [-1,1] sample to [0,1].
func To01(v float64) float64 {
	return clamp(v*0.5+0.5, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	Register("perlin", NewPerlin)
	Register("simplex", NewSimplex)
	Register("value", NewValue)
}
