package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 2
	// go-perlin output peaks around +-0.7 for two octaves; stretch it so the
	// continent thresholds see the same spread as the other kinds.
	perlinGain = 1.4
)

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns gradient noise backed by github.com/aquilax/go-perlin.
func NewPerlin(seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return clamp(s.p.Noise2D(x, y)*perlinGain, -1, 1)
}
