package config

import (
	"math"
	"strconv"
)

// FromMap returns a copy of base with flag-style key/value overrides applied.
// Values that fail to parse, are not finite, or fall outside their domain
// are ignored.
func FromMap(base *WorldConfig, kv map[string]string) *WorldConfig {
	if base == nil {
		base = Default()
	}
	c := base.Clone()
	if kv == nil {
		return c
	}
	h := &c.Geology.Heightmap
	cm := &c.Environment.ClimateModel
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			h.BaseSeed = parsed
			c.WorldSeed = parsed
		}
	}
	if v, ok := kv["base_seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			h.BaseSeed = parsed
		}
	}
	if v, ok := kv["world_seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.WorldSeed = parsed
		}
	}
	if v, ok := kv["sea_level"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed >= 0 && parsed <= 1 {
			c.SeaLevel = parsed
		}
	}
	if v, ok := kv["sea_level_m"]; ok {
		if parsed, ok := parseFinite(v); ok {
			cm.SeaLevelMeters = parsed
		}
	}
	if v, ok := kv["continental_scale_km"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed > 0 {
			h.ContinentalScaleKm = parsed
		}
	}
	if v, ok := kv["mountain_amplitude_m"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed > 0 {
			h.MountainAmplitudeMeters = parsed
		}
	}
	if v, ok := kv["erosion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			h.ErosionIterations = parsed
		}
	}
	if v, ok := kv["river_density"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed > 0 {
			h.RiverDensity = parsed
		}
	}
	if v, ok := kv["max_relief_m"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed > 0 {
			h.MaxReliefMeters = parsed
		}
	}
	if v, ok := kv["noise"]; ok && v != "" {
		h.Noise = v
	}
	if v, ok := kv["humidity_model"]; ok && v != "" {
		cm.ModelType = v
	}
	if v, ok := kv["base_temperature_c"]; ok {
		if parsed, ok := parseFinite(v); ok {
			c.Environment.Atmosphere.BaseTemperatureC = parsed
		}
	}
	if v, ok := kv["lapse_rate_c_per_km"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed >= 0 {
			cm.TemperatureLapseRateCPerKm = parsed
		}
	}
	if v, ok := kv["precipitation_scale"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed > 0 {
			cm.PrecipitationScale = parsed
		}
	}
	if v, ok := kv["storm_frequency"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed >= 0 {
			cm.StormFrequency = parsed
		}
	}
	if v, ok := kv["storm_intensity"]; ok {
		if parsed, ok := parseFinite(v); ok && parsed >= 0 {
			cm.StormIntensityMean = parsed
		}
	}
	return c
}

// parseFinite parses v as a float and rejects NaN and the infinities, which
// strconv accepts.
func parseFinite(v string) (float64, bool) {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}
