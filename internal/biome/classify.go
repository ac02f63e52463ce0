package biome

import (
	"math"

	"seedgen/internal/config"
)

// Dimension weights, out-of-range penalties and half-range floors.
const (
	weightTemp   = 1.0
	weightHum    = 1.0
	weightElev   = 0.5
	weightPrecip = 0.25

	penaltyTemp   = 0.5
	penaltyHum    = 0.5
	penaltyElev   = 0.3
	penaltyPrecip = 0.3

	floorTemp   = 1.0
	floorHum    = 0.05
	floorElev   = 50.0
	floorPrecip = 50.0
)

// Score measures how far s sits from the centre of b's climate envelope.
// Zero means the sample is exactly at every midpoint.
func Score(b config.BiomeConfig, s Sample) float64 {
	cr := b.ClimateRange
	return term(s.TemperatureC, cr.TemperatureC, floorTemp, weightTemp, penaltyTemp) +
		term(s.Humidity, cr.Humidity, floorHum, weightHum, penaltyHum) +
		term(s.ElevationM, cr.ElevationMeters, floorElev, weightElev, penaltyElev) +
		term(s.PrecipitationMm, b.PrecipitationRangeMmPerYear, floorPrecip, weightPrecip, penaltyPrecip)
}

func term(v float64, r config.Range, floor, weight, penalty float64) float64 {
	half := math.Max(math.Abs(r.Hi()-r.Lo())/2, floor)
	d := (v - r.Mid()) / half
	score := weight * d * d
	if v < r.Lo() || v > r.Hi() {
		score += penalty
	}
	return score
}

// Classify returns the index of the lowest-scoring biome. The first biome
// wins ties. It reports false for an empty list or a sample below the
// meters sea level.
func Classify(biomes []config.BiomeConfig, s Sample, seaLevelMeters float64) (int, bool) {
	if len(biomes) == 0 || s.ElevationM < seaLevelMeters {
		return 0, false
	}
	best, bestScore := 0, math.Inf(1)
	for i, b := range biomes {
		if sc := Score(b, s); sc < bestScore {
			best, bestScore = i, sc
		}
	}
	return best, true
}
