package biome

import (
	"math"

	"seedgen/internal/config"
	"seedgen/internal/noise"
)

// waterMargin widens the sea-level cut so shoreline cells stay water.
const waterMargin = 0.002

// Sample is the synthetic climate at one land cell.
type Sample struct {
	Latitude        float64
	ElevationM      float64
	TemperatureC    float64
	Humidity        float64
	PrecipitationMm float64
}

// Climate derives per-cell climate samples from a normalized heightmap.
type Climate struct {
	SeaLevel       float64
	SeaLevelMeters float64
	MaxReliefM     float64

	EquatorC   float64
	PoleC      float64
	LapsePerM  float64
	Banded     bool
	PrecipBase float64
	StormBoost float64

	jitter *noise.ClimateSet
}

// NewClimate reads the climate model from cfg. f seeds the temperature and
// humidity jitter fields.
func NewClimate(cfg *config.WorldConfig, f noise.Factory) *Climate {
	atm := cfg.Environment.Atmosphere
	cm := cfg.Environment.ClimateModel
	relief := cfg.Geology.Heightmap.MaxReliefMeters
	if relief <= 0 {
		relief = 3500
	}
	scale := cm.PrecipitationScale
	if scale <= 0 {
		scale = 1
	}
	return &Climate{
		SeaLevel:       cfg.SeaLevel,
		SeaLevelMeters: cm.SeaLevelMeters,
		MaxReliefM:     relief,
		EquatorC:       atm.BaseTemperatureC + 13,
		PoleC:          atm.BaseTemperatureC - 25,
		LapsePerM:      cm.TemperatureLapseRateCPerKm / 1000,
		Banded:         cm.ModelType == "banded",
		PrecipBase:     1800 * scale,
		StormBoost:     1 + math.Max(cm.StormFrequency, 0)*math.Max(cm.StormIntensityMean, 0),
		jitter:         noise.NewClimateSet(f, int64(cfg.WorldSeed)),
	}
}

// Water reports whether a normalized height is at or below the sea cut.
func (c *Climate) Water(h01 float64) bool {
	return h01 <= c.SeaLevel+waterMargin
}

// ElevationM converts a normalized height into meters above sea level.
func (c *Climate) ElevationM(h01 float64) float64 {
	rel := clamp((h01-c.SeaLevel)/math.Max(1-c.SeaLevel, 1e-6), 0, 1)
	return rel * c.MaxReliefM
}

// At samples the climate for cell (x, y) of a w×h grid with normalized
// height h01. Latitude runs from -1 at the top row to 1 at the bottom.
func (c *Climate) At(x, y, w, h int, h01 float64) Sample {
	fx := float64(x) / float64(max(w-1, 1))
	fy := float64(y) / float64(max(h-1, 1))
	lat := fy*2 - 1
	latAbs := math.Abs(lat)
	elev := c.ElevationM(h01)

	temp := c.PoleC + (c.EquatorC-c.PoleC)*(1-latAbs)
	temp -= elev * c.LapsePerM
	temp += c.jitter.Temperature.Eval2(fx*1.3, fy*1.3) * 3

	hum := c.baseHumidity(latAbs)
	hum *= 1 - 0.4*clamp(elev/c.MaxReliefM, 0, 1)
	hum += c.jitter.Humidity.Eval2(fx*1.1, fy*1.1) * 0.15
	hum = clamp(hum, 0.05, 0.98)

	precip := clamp(hum*c.PrecipBase*c.StormBoost, 50, 4000)

	return Sample{
		Latitude:        lat,
		ElevationM:      elev,
		TemperatureC:    temp,
		Humidity:        hum,
		PrecipitationMm: precip,
	}
}

// baseHumidity is wet at the equator. The banded profile adds a dry belt
// around 30° and recovers toward moderately wet high latitudes.
func (c *Climate) baseHumidity(latAbs float64) float64 {
	if !c.Banded {
		return 0.9 - 0.6*latAbs
	}
	belt := (latAbs - 0.33) / 0.1
	return 0.9 - 0.35*latAbs - 0.5*math.Exp(-belt*belt)
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
