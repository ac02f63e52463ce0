package noise

// Constant is a zero-variance Source; every sample returns the same value.
type Constant float64

// Eval2 implements Source.
func (c Constant) Eval2(float64, float64) float64 { return clamp(float64(c), -1, 1) }

// ConstantFactory returns a Factory producing c regardless of seed.
func ConstantFactory(c float64) Factory {
	return func(int64) Source { return Constant(c) }
}
