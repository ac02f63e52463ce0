package noise

// Set bundles the independently seeded fields one heightmap generation uses.
// A Set is built per call; nothing is shared between generations.
type Set struct {
	Continent Source
	Detail    Source
	Ridge1    Source
	Ridge2    Source
	Warp      Source
	Lake      Source
	CanyonA   Source
	CanyonB   Source
}

// NewSet derives every field seed from base. Seeds are computed in uint32 so
// that the XOR/offset derivation wraps the same way for every platform.
func NewSet(f Factory, base int64) *Set {
	b := uint32(base)
	return &Set{
		Continent: f(int64(b)),
		Detail:    f(int64(b ^ 0x12345678)),
		Ridge1:    f(int64(b ^ 0x87654321)),
		Ridge2:    f(int64(b + 7777)),
		Warp:      f(int64(b + 999)),
		Lake:      f(int64(b + 31337)),
		CanyonA:   f(int64(b + 4099)),
		CanyonB:   f(int64(b ^ 0x0BADF00D)),
	}
}

// ClimateSet holds the fields that jitter the synthetic climate.
type ClimateSet struct {
	Temperature Source
	Humidity    Source
}

// NewClimateSet derives climate seeds from the world seed.
func NewClimateSet(f Factory, worldSeed int64) *ClimateSet {
	b := uint32(worldSeed)
	return &ClimateSet{
		Temperature: f(int64(b + 8888)),
		Humidity:    f(int64(b + 7777)),
	}
}
