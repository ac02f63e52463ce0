package config

import (
	"fmt"

	"seedgen/internal/noise"
)

// Warning is a non-fatal configuration problem. Generation still succeeds.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// HumidityModels lists the recognised ClimateModelConfig.ModelType values.
var HumidityModels = []string{"banded", "simple"}

// Validate reports suspicious settings without rejecting the config.
func (c *WorldConfig) Validate() []Warning {
	var out []Warning
	warn := func(field, format string, args ...any) {
		out = append(out, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.SeaLevel < 0 || c.SeaLevel > 1 {
		warn("seaLevel", "%.3f is outside the normalized range [0,1]", c.SeaLevel)
	}
	if sl := c.Environment.ClimateModel.SeaLevelMeters; sl != 0 {
		warn("environment.climateModel.seaLevelMeters",
			"%.1f m is applied independently of seaLevel=%.3f; land below it is classified as water", sl, c.SeaLevel)
	}
	if _, ok := noise.Lookup(c.Geology.Heightmap.Noise); !ok {
		warn("geology.heightmap.noise", "unknown noise kind %q, using %q", c.Geology.Heightmap.Noise, noise.Default)
	}
	model := c.Environment.ClimateModel.ModelType
	known := model == ""
	for _, m := range HumidityModels {
		if m == model {
			known = true
		}
	}
	if !known {
		warn("environment.climateModel.modelType", "unknown humidity model %q, using simple falloff", model)
	}
	if len(c.Biomes) == 0 {
		warn("biomes", "%v", ErrNoBiomes)
	}
	seen := map[string]int{}
	for i, b := range c.Biomes {
		field := fmt.Sprintf("biomes[%d]", i)
		if b.ID == "" {
			warn(field+".id", "empty id")
		} else if prev, ok := seen[b.ID]; ok {
			warn(field+".id", "duplicate of biomes[%d] (%s)", prev, b.ID)
		} else {
			seen[b.ID] = i
		}
		checkRange := func(name string, r Range) {
			if r.Lo() > r.Hi() {
				warn(field+"."+name, "inverted range [%g, %g]", r.Lo(), r.Hi())
			}
		}
		checkRange("climateRange.temperatureC", b.ClimateRange.TemperatureC)
		checkRange("climateRange.humidity", b.ClimateRange.Humidity)
		checkRange("climateRange.elevationMeters", b.ClimateRange.ElevationMeters)
		checkRange("precipitationRangeMmPerYear", b.PrecipitationRangeMmPerYear)
		if len(b.Color) != 0 && len(b.Color) != 3 {
			warn(field+".color", "expected 3 components, got %d", len(b.Color))
		}
	}
	if len(c.Biomes) > 255 {
		warn("biomes", "%d biomes; only the first 255 can be encoded in cached maps", len(c.Biomes))
	}
	return out
}
