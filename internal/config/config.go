// Package config holds the declarative world description that drives terrain
// and biome generation.
package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// WorldConfig is the root of a world-config.json document. Sections the
// generator does not consume (materials, catastrophes, civilizations...) are
// ignored on decode.
type WorldConfig struct {
	SeedVersion string            `json:"seedVersion"`
	WorldID     string            `json:"worldId"`
	Meta        MetaConfig        `json:"meta"`
	Environment EnvironmentConfig `json:"environment"`
	Geology     GeologyConfig     `json:"geology"`
	Biomes      []BiomeConfig     `json:"biomes"`
	WorldSeed   uint64            `json:"worldSeed"`
	// SeaLevel is the water cut on normalized heightmap values [0,1].
	SeaLevel float64 `json:"seaLevel"`
}

// MetaConfig describes the world for humans.
type MetaConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	CreatedAt   string `json:"createdAt"`
}

// EnvironmentConfig groups atmosphere and climate settings.
type EnvironmentConfig struct {
	Atmosphere   AtmosphereConfig   `json:"atmosphere"`
	ClimateModel ClimateModelConfig `json:"climateModel"`
}

// AtmosphereConfig carries the global temperature/humidity baseline.
type AtmosphereConfig struct {
	PressureKPa        float64 `json:"pressureKPa"`
	BaseTemperatureC   float64 `json:"baseTemperatureC"`
	HumidityGlobalMean float64 `json:"humidityGlobalMean"`
}

// ClimateModelConfig parameterises the synthetic climate used for biomes.
type ClimateModelConfig struct {
	// ModelType selects the humidity profile: "banded" or anything else for
	// the simple equator-biased falloff.
	ModelType string `json:"modelType"`
	// SeaLevelMeters is an elevation cut in meters, independent of
	// WorldConfig.SeaLevel.
	SeaLevelMeters             float64 `json:"seaLevelMeters"`
	TemperatureLapseRateCPerKm float64 `json:"temperatureLapseRateCPerKm"`
	PrecipitationScale         float64 `json:"precipitationScale"`
	WindGlobalPattern          string  `json:"windGlobalPattern"`
	StormFrequency             float64 `json:"stormFrequency"`
	StormIntensityMean         float64 `json:"stormIntensityMean"`
}

// GeologyConfig wraps the heightmap settings.
type GeologyConfig struct {
	Heightmap HeightmapConfig `json:"heightmap"`
}

// HeightmapConfig holds the terrain synthesis knobs.
type HeightmapConfig struct {
	GenerationMode          string  `json:"generationMode"`
	BaseSeed                uint64  `json:"baseSeed"`
	ContinentalScaleKm      float64 `json:"continentalScaleKm"`
	MountainAmplitudeMeters float64 `json:"mountainAmplitudeMeters"`
	ErosionIterations       int     `json:"erosionIterations"`
	RiverDensity            float64 `json:"riverDensity"`
	// MaxReliefMeters converts normalized height above sea level to meters.
	MaxReliefMeters float64 `json:"maxReliefMeters"`
	// Noise names a registered noise kind ("perlin", "simplex", "value").
	Noise string `json:"noise"`
}

// BiomeConfig is one entry of the ordered biome list.
type BiomeConfig struct {
	ID                          string             `json:"id"`
	DisplayName                 string             `json:"displayName"`
	ClimateRange                ClimateRangeConfig `json:"climateRange"`
	PrecipitationRangeMmPerYear Range              `json:"precipitationRangeMmPerYear"`
	DominantMaterials           []string           `json:"dominantMaterials,omitempty"`
	VegetationDensity           float64            `json:"vegetationDensity"`
	AllowSettlements            bool               `json:"allowSettlements"`
	// Color optionally overrides the render palette entry ([r,g,b]).
	Color []uint8 `json:"color,omitempty"`
}

// ClimateRangeConfig holds the per-dimension ranges a biome prefers.
type ClimateRangeConfig struct {
	TemperatureC    Range `json:"temperatureC"`
	Humidity        Range `json:"humidity"`
	ElevationMeters Range `json:"elevationMeters"`
}

// Range is a closed [lo, hi] interval encoded as a two-element JSON array.
type Range [2]float64

// Lo returns the lower bound.
func (r Range) Lo() float64 { return r[0] }

// Hi returns the upper bound.
func (r Range) Hi() float64 { return r[1] }

// Mid returns the midpoint.
func (r Range) Mid() float64 { return 0.5 * (r[0] + r[1]) }

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool { return v >= r[0] && v <= r[1] }

var (
	// ErrNoBiomes marks a config whose biome list is empty. Classification
	// still succeeds and reports no biome everywhere.
	ErrNoBiomes = errors.New("config: biome list is empty")
)

// Parse decodes a world config, filling unset numeric knobs with defaults.
func Parse(data []byte) (*WorldConfig, error) {
	cfg := &WorldConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse world config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads and parses a world config file.
func Load(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Clone returns a deep copy so callers can apply overrides safely.
func (c *WorldConfig) Clone() *WorldConfig {
	out := *c
	out.Biomes = make([]BiomeConfig, len(c.Biomes))
	for i, b := range c.Biomes {
		b.DominantMaterials = append([]string(nil), b.DominantMaterials...)
		b.Color = append([]uint8(nil), b.Color...)
		out.Biomes[i] = b
	}
	return &out
}

// Digest returns a stable hex SHA-256 of the canonical JSON encoding. Two
// configs with equal digests generate identical maps. JSON cannot encode
// non-finite floats; such configs are hashed from their Go value instead.
func (c *WorldConfig) Digest() string {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(c); err != nil {
		buf.Reset()
		fmt.Fprintf(&buf, "%+v", *c)
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

func (c *WorldConfig) applyDefaults() {
	d := Default()
	h := &c.Geology.Heightmap
	if h.ContinentalScaleKm <= 0 {
		h.ContinentalScaleKm = d.Geology.Heightmap.ContinentalScaleKm
	}
	if h.MountainAmplitudeMeters <= 0 {
		h.MountainAmplitudeMeters = d.Geology.Heightmap.MountainAmplitudeMeters
	}
	if h.ErosionIterations <= 0 {
		h.ErosionIterations = d.Geology.Heightmap.ErosionIterations
	}
	if h.RiverDensity <= 0 {
		h.RiverDensity = d.Geology.Heightmap.RiverDensity
	}
	if h.MaxReliefMeters <= 0 {
		h.MaxReliefMeters = d.Geology.Heightmap.MaxReliefMeters
	}
	if h.Noise == "" {
		h.Noise = d.Geology.Heightmap.Noise
	}
	cm := &c.Environment.ClimateModel
	if cm.TemperatureLapseRateCPerKm == 0 {
		cm.TemperatureLapseRateCPerKm = d.Environment.ClimateModel.TemperatureLapseRateCPerKm
	}
	if cm.PrecipitationScale <= 0 {
		cm.PrecipitationScale = d.Environment.ClimateModel.PrecipitationScale
	}
}
