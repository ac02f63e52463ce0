package terrain

import (
	"math"

	"seedgen/internal/config"
	"seedgen/internal/core"
)

// Params holds every tunable of the synthesis and erosion pipeline.
type Params struct {
	Seed             uint32
	ContinentalScale float64
	MountainGain     float64

	ThermalIterations int
	Talus             float64
	ThermalAmount     float64

	WaterFraction float64
	FlowThreshold float64
	CarveStrength float64

	LakeChance   float64
	LakeMinDepth float64
	LakeFill     float64

	CanyonThreshold float64
	CanyonPower     float64
	CanyonStrength  float64

	SmoothIterations int
	Gamma            float64
}

// DefaultParams returns the pipeline tuning used when no config is given.
func DefaultParams() Params {
	return Params{
		Seed:              1337,
		ContinentalScale:  2000,
		MountainGain:      1,
		ThermalIterations: 8,
		Talus:             0.03,
		ThermalAmount:     0.15,
		WaterFraction:     0.25,
		FlowThreshold:     120,
		CarveStrength:     0.015,
		LakeChance:        0.6,
		LakeMinDepth:      0.005,
		LakeFill:          0.7,
		CanyonThreshold:   0.85,
		CanyonPower:       4,
		CanyonStrength:    0.04,
		SmoothIterations:  2,
		Gamma:             1.05,
	}
}

// ParamsFromConfig maps the heightmap section of a world config onto the
// pipeline knobs.
func ParamsFromConfig(cfg *config.WorldConfig) Params {
	p := DefaultParams()
	if cfg == nil {
		return p
	}
	h := cfg.Geology.Heightmap
	p.Seed = uint32(h.BaseSeed)
	if !math.IsNaN(h.ContinentalScaleKm) && !math.IsInf(h.ContinentalScaleKm, 0) {
		p.ContinentalScale = math.Max(h.ContinentalScaleKm, 10)
	}
	if h.MountainAmplitudeMeters > 0 {
		p.MountainGain = clamp(h.MountainAmplitudeMeters/3000, 0.25, 2)
	}
	if h.ErosionIterations >= 0 {
		p.ThermalIterations = h.ErosionIterations
	}
	if h.RiverDensity > 0 {
		p.FlowThreshold = 120 / clamp(2*h.RiverDensity, 0.25, 4)
	}
	return p
}

// Parameters reports the knobs in the grouped form the viewer HUD lists.
func (p Params) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Synthesis",
			Params: []core.Parameter{
				core.IntParam("seed", "Seed", int64(p.Seed)),
				core.FloatParam("continental_scale_km", "Continental scale (km)", p.ContinentalScale),
				core.FloatParam("mountain_gain", "Mountain gain", p.MountainGain),
			},
		},
		{
			Name: "Thermal",
			Params: []core.Parameter{
				core.IntParam("erosion_iterations", "Thermal iterations", int64(p.ThermalIterations)),
				core.FloatParam("talus", "Talus", p.Talus),
				core.FloatParam("thermal_amount", "Slide amount", p.ThermalAmount),
			},
		},
		{
			Name: "Rivers",
			Params: []core.Parameter{
				core.FloatParam("water_fraction", "Water fraction", p.WaterFraction),
				core.FloatParam("flow_threshold", "Flow threshold", p.FlowThreshold),
				core.FloatParam("carve_strength", "Carve strength", p.CarveStrength),
			},
		},
		{
			Name: "Lakes & Canyons",
			Params: []core.Parameter{
				core.FloatParam("lake_chance", "Lake chance", p.LakeChance),
				core.FloatParam("lake_min_depth", "Lake min depth", p.LakeMinDepth),
				core.FloatParam("canyon_threshold", "Canyon threshold", p.CanyonThreshold),
				core.FloatParam("canyon_strength", "Canyon strength", p.CanyonStrength),
			},
		},
		{
			Name: "Finish",
			Params: []core.Parameter{
				core.IntParam("smooth_iterations", "Smoothing passes", int64(p.SmoothIterations)),
				core.FloatParam("gamma", "Gamma", p.Gamma),
			},
		},
	}}
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
