package noise

import opensimplex "github.com/ojrac/opensimplex-go"

type simplexSource struct {
	n opensimplex.Noise
}

// NewSimplex returns OpenSimplex noise.
func NewSimplex(seed int64) Source {
	return simplexSource{n: opensimplex.New(seed)}
}

func (s simplexSource) Eval2(x, y float64) float64 {
	return clamp(s.n.Eval2(x, y), -1, 1)
}
