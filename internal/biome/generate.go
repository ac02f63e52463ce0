// Package biome classifies heightmap cells into configured biomes using a
// latitude-aware synthetic climate and nearest-match scoring.
package biome

import (
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seedgen/internal/config"
	"seedgen/internal/noise"
	"seedgen/internal/terrain"
)

// DefaultPasses is the number of majority-filter passes applied after
// classification.
const DefaultPasses = 2

// Classifier turns a heightmap into a biome map.
type Classifier struct {
	// Noise overrides the configured noise kind for climate jitter.
	Noise noise.Factory
	// Passes overrides DefaultPasses when positive. Use NoSmoothing to skip
	// the filter entirely.
	Passes int
	// NoSmoothing disables the majority filter.
	NoSmoothing bool
	Logger      *slog.Logger
	Workers     int
}

// Generate classifies hm with the default classifier.
func Generate(cfg *config.WorldConfig, hm *terrain.Heightmap) *Map {
	var c Classifier
	return c.Map(cfg, hm)
}

// Map classifies and smooths.
func (c *Classifier) Map(cfg *config.WorldConfig, hm *terrain.Heightmap) *Map {
	if cfg == nil {
		cfg = config.Default()
	}
	raw := c.Raw(cfg, hm)
	if c.NoSmoothing {
		return raw
	}
	passes := c.Passes
	if passes <= 0 {
		passes = DefaultPasses
	}
	out := majorityFilter(raw, passes, len(cfg.Biomes))
	c.logger().Debug("biome smoothing", "passes", passes, "changed", raw.Diff(out))
	return out
}

// Raw classifies every cell without the majority filter.
func (c *Classifier) Raw(cfg *config.WorldConfig, hm *terrain.Heightmap) *Map {
	if hm == nil || hm.Empty() {
		return &Map{}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if len(cfg.Biomes) == 0 {
		c.logger().Warn("classifying without biomes", "err", config.ErrNoBiomes)
	}
	clim := c.Climate(cfg)
	w, h := hm.W, hm.H
	out := NewMap(w, h)

	var eg errgroup.Group
	eg.SetLimit(c.workers())
	for y := 0; y < h; y++ {
		y := y
		eg.Go(func() error {
			for x := 0; x < w; x++ {
				h01 := float64(hm.Get(x, y))
				if clim.Water(h01) {
					continue
				}
				s := clim.At(x, y, w, h, h01)
				if idx, ok := Classify(cfg.Biomes, s, clim.SeaLevelMeters); ok {
					out.Set(x, y, idx)
				}
			}
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

// Climate builds the climate model the classifier samples.
func (c *Classifier) Climate(cfg *config.WorldConfig) *Climate {
	f := c.Noise
	if f == nil {
		var ok bool
		if f, ok = noise.Lookup(cfg.Geology.Heightmap.Noise); !ok {
			f = noise.MustLookup(noise.Default)
		}
	}
	return NewClimate(cfg, f)
}

func (c *Classifier) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discard
}

func (c *Classifier) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
