package config

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()
	if len(cfg.Biomes) < 4 {
		t.Fatalf("expected at least four default biomes, got %d", len(cfg.Biomes))
	}
	if cfg.Geology.Heightmap.ErosionIterations != 8 {
		t.Fatalf("unexpected erosion iterations %d", cfg.Geology.Heightmap.ErosionIterations)
	}
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Fatalf("default config should validate cleanly, got %v", warnings)
	}
}

func TestLoadTestdata(t *testing.T) {
	cfg, err := Load("testdata/world-config.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorldID != "archipelago-test" {
		t.Fatalf("unexpected world id %q", cfg.WorldID)
	}
	if cfg.Geology.Heightmap.BaseSeed != 42 || cfg.WorldSeed != 42 {
		t.Fatalf("seeds not decoded: base=%d world=%d", cfg.Geology.Heightmap.BaseSeed, cfg.WorldSeed)
	}
	if len(cfg.Biomes) != 2 {
		t.Fatalf("expected two biomes, got %d", len(cfg.Biomes))
	}
	r := cfg.Biomes[0].ClimateRange.TemperatureC
	if r.Lo() != 22 || r.Hi() != 32 || r.Mid() != 27 {
		t.Fatalf("temperature range decoded as %v", r)
	}
	if got := cfg.Biomes[1].Color; len(got) != 3 || got[0] != 190 {
		t.Fatalf("colour override decoded as %v", got)
	}
	// Missing knobs fall back to defaults.
	if cfg.Geology.Heightmap.MaxReliefMeters != 3500 {
		t.Fatalf("expected default max relief, got %v", cfg.Geology.Heightmap.MaxReliefMeters)
	}
	if cfg.Geology.Heightmap.Noise != "perlin" {
		t.Fatalf("expected default noise kind, got %q", cfg.Geology.Heightmap.Noise)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"worldSeed": "abc"`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromMapOverrides(t *testing.T) {
	base := Default()
	cfg := FromMap(base, map[string]string{
		"seed":                 "99",
		"sea_level":            "0.55",
		"continental_scale_km": "800",
		"erosion_iterations":   "0",
		"river_density":        "1.5",
		"noise":                "simplex",
		"humidity_model":       "simple",
	})
	h := cfg.Geology.Heightmap
	if h.BaseSeed != 99 || cfg.WorldSeed != 99 {
		t.Fatalf("seed override not applied: %d %d", h.BaseSeed, cfg.WorldSeed)
	}
	if cfg.SeaLevel != 0.55 || h.ContinentalScaleKm != 800 || h.ErosionIterations != 0 || h.RiverDensity != 1.5 {
		t.Fatalf("numeric overrides not applied: %+v sea=%v", h, cfg.SeaLevel)
	}
	if h.Noise != "simplex" || cfg.Environment.ClimateModel.ModelType != "simple" {
		t.Fatalf("string overrides not applied")
	}
	if base.WorldSeed != 1337 || base.Geology.Heightmap.ErosionIterations != 8 {
		t.Fatal("FromMap mutated its base config")
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(nil, map[string]string{
		"seed":          "-3",
		"sea_level":     "1.5",
		"river_density": "abc",
	})
	def := Default()
	if cfg.WorldSeed != def.WorldSeed || cfg.SeaLevel != def.SeaLevel || cfg.Geology.Heightmap.RiverDensity != def.Geology.Heightmap.RiverDensity {
		t.Fatal("invalid overrides should be ignored")
	}
}

func TestFromMapRejectsNonFiniteValues(t *testing.T) {
	def := Default()
	for _, v := range []string{"Inf", "+Inf", "-Inf", "NaN", "infinity"} {
		cfg := FromMap(nil, map[string]string{
			"continental_scale_km": v,
			"mountain_amplitude_m": v,
			"river_density":        v,
			"max_relief_m":         v,
			"sea_level":            v,
			"sea_level_m":          v,
			"base_temperature_c":   v,
			"lapse_rate_c_per_km":  v,
			"precipitation_scale":  v,
			"storm_frequency":      v,
			"storm_intensity":      v,
		})
		if cfg.Digest() != def.Digest() {
			t.Fatalf("%q should leave the config unchanged: %+v", v, cfg)
		}
		h := cfg.Geology.Heightmap
		if math.IsInf(h.ContinentalScaleKm, 0) || math.IsNaN(cfg.Environment.Atmosphere.BaseTemperatureC) {
			t.Fatalf("%q leaked into the config", v)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Biomes[0].ID = "changed"
	if cfg.Biomes[0].ID == "changed" {
		t.Fatal("clone shares biome slice")
	}
}

func TestDigestTracksContent(t *testing.T) {
	a := Default()
	b := Default()
	if a.Digest() != b.Digest() {
		t.Fatal("equal configs must share a digest")
	}
	b.WorldSeed++
	if a.Digest() == b.Digest() {
		t.Fatal("digest ignored a seed change")
	}
}

func TestDigestWithNonFiniteField(t *testing.T) {
	a := Default()
	a.Environment.Atmosphere.BaseTemperatureC = math.NaN()
	b := a.Clone()
	b.WorldSeed = 999
	b.Geology.Heightmap.BaseSeed = 999
	if a.Digest() == b.Digest() {
		t.Fatal("configs differing in seed share a digest")
	}
	if a.Digest() != a.Clone().Digest() {
		t.Fatal("digest of a non-finite config is not stable")
	}
	empty := Default()
	empty.Environment.Atmosphere.BaseTemperatureC = math.Inf(1)
	if empty.Digest() == a.Digest() {
		t.Fatal("NaN and +Inf configs share a digest")
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.Biomes = nil
	cfg.SeaLevel = 1.2
	cfg.Environment.ClimateModel.SeaLevelMeters = 50
	cfg.Geology.Heightmap.Noise = "worley"
	warnings := cfg.Validate()
	fields := map[string]bool{}
	for _, w := range warnings {
		fields[w.Field] = true
	}
	for _, want := range []string{"biomes", "seaLevel", "environment.climateModel.seaLevelMeters", "geology.heightmap.noise"} {
		if !fields[want] {
			t.Fatalf("missing warning for %s in %v", want, warnings)
		}
	}
	for _, w := range warnings {
		if w.Field == "biomes" && !strings.Contains(w.Message, "empty") {
			t.Fatalf("unexpected biome warning %q", w.Message)
		}
	}
}

func TestValidateInvertedRange(t *testing.T) {
	cfg := Default()
	cfg.Biomes[1].ClimateRange.Humidity = Range{0.8, 0.2}
	warnings := cfg.Validate()
	if len(warnings) != 1 || warnings[0].Field != "biomes[1].climateRange.humidity" {
		t.Fatalf("expected one inverted-range warning, got %v", warnings)
	}
}
