// Package terrain synthesizes continents and mountain belts from layered
// noise, erodes them, and normalizes the result into a Heightmap.
package terrain

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"seedgen/internal/config"
	"seedgen/internal/core"
	"seedgen/internal/noise"
)

// Generator runs the heightmap pipeline. The zero value is ready to use and
// picks the noise kind named in the config.
type Generator struct {
	// Noise overrides the configured noise kind when non-nil.
	Noise noise.Factory
	// Logger receives per-stage debug timings. Nil discards.
	Logger *slog.Logger
	// Workers bounds row-parallel synthesis. Zero means GOMAXPROCS.
	Workers int
}

// GenerateHeightmap runs the default generator.
func GenerateHeightmap(cfg *config.WorldConfig, w, h int) *Heightmap {
	var g Generator
	return g.Heightmap(cfg, w, h)
}

// Heightmap synthesizes, erodes and normalizes a w×h map. Zero-area
// requests return an empty map.
func (g *Generator) Heightmap(cfg *config.WorldConfig, w, h int) *Heightmap {
	if w <= 0 || h <= 0 {
		return &Heightmap{}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	p := ParamsFromConfig(cfg)
	set := noise.NewSet(g.factory(cfg), int64(p.Seed))
	f := g.Raw(set, p, w, h)
	g.Erode(f, set, p)

	var values []float32
	g.stage("normalize", func() { values = normalize(f, p.Gamma) })
	return NewHeightmap(w, h, values)
}

// Raw fills an unnormalized elevation field. Rows are independent and are
// sampled concurrently.
func (g *Generator) Raw(set *noise.Set, p Params, w, h int) *core.Field {
	f := core.NewField(w, h)
	if f.Empty() {
		return f
	}
	g.stage("synthesize", func() {
		s := newSynthesizer(set, p, w, h)
		var eg errgroup.Group
		eg.SetLimit(g.workers())
		for y := 0; y < h; y++ {
			y := y
			eg.Go(func() error {
				s.fillRow(f, y)
				return nil
			})
		}
		_ = eg.Wait()
	})
	return f
}

// Erode applies the erosion stages in their fixed order: thermal slides,
// river carving, lakes, canyons, then smoothing.
func (g *Generator) Erode(f *core.Field, set *noise.Set, p Params) {
	if f.Empty() {
		return
	}
	g.stage("thermal", func() { thermalErosion(f, p.ThermalIterations, p.Talus, p.ThermalAmount) })
	g.stage("rivers", func() { carveRivers(f, p.WaterFraction, p.FlowThreshold, p.CarveStrength) })
	g.stage("lakes", func() {
		n := fillLakes(f, set.Lake, p)
		g.logger().Debug("lakes filled", "count", n)
	})
	g.stage("canyons", func() { carveCanyons(f, set.CanyonA, set.CanyonB, p) })
	g.stage("smooth", func() { smooth(f, p.SmoothIterations) })
}

func (g *Generator) factory(cfg *config.WorldConfig) noise.Factory {
	if g.Noise != nil {
		return g.Noise
	}
	kind := cfg.Geology.Heightmap.Noise
	if f, ok := noise.Lookup(kind); ok {
		return f
	}
	g.logger().Debug("unknown noise kind, using default", "kind", kind, "default", noise.Default)
	return noise.MustLookup(noise.Default)
}

func (g *Generator) stage(name string, fn func()) {
	log := g.logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		fn()
		return
	}
	start := time.Now()
	fn()
	log.Debug("terrain stage", "stage", name, "elapsed", time.Since(start))
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return discard
}

func (g *Generator) workers() int {
	if g.Workers > 0 {
		return g.Workers
	}
	return runtime.GOMAXPROCS(0)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
