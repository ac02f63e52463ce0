package app

import (
	"image/color"
	"io"
	"log/slog"
	"strconv"

	"seedgen/internal/biome"
	"seedgen/internal/config"
	"seedgen/internal/core"
	"seedgen/internal/render"
	"seedgen/internal/store"
	"seedgen/internal/terrain"
)

// Session owns one generated world and re-generates it when knobs change.
// The viewer draws from it; it has no GUI dependencies of its own.
type Session struct {
	cfg  *config.WorldConfig
	w, h int

	gen   terrain.Generator
	cls   biome.Classifier
	cache *store.Cache
	log   *slog.Logger

	hm      *terrain.Heightmap
	bm      *biome.Map
	flow    *terrain.FlowField
	stats   terrain.Stats
	palette []color.RGBA

	view    render.View
	pixels  []byte
	version int
}

// NewSession generates the initial world. cache and log may be nil.
func NewSession(cfg *config.WorldConfig, w, h int, cache *store.Cache, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		cfg:   cfg.Clone(),
		w:     w,
		h:     h,
		cache: cache,
		log:   log,
		gen:   terrain.Generator{Logger: log},
		cls:   biome.Classifier{Logger: log},
	}
	s.Regenerate()
	return s
}

// Name is shown in the HUD title.
func (s *Session) Name() string {
	if s.cfg.Meta.Name != "" {
		return s.cfg.Meta.Name
	}
	return s.cfg.WorldID
}

// Config returns the active world config. Do not modify.
func (s *Session) Config() *config.WorldConfig { return s.cfg }

// Size reports the map dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Heightmap returns the current heightmap.
func (s *Session) Heightmap() *terrain.Heightmap { return s.hm }

// Biomes returns the current biome map.
func (s *Session) Biomes() *biome.Map { return s.bm }

// Flow returns flow accumulation against the configured sea level.
func (s *Session) Flow() *terrain.FlowField { return s.flow }

// Stats summarizes the current heightmap.
func (s *Session) Stats() terrain.Stats { return s.stats }

// View reports the active layer.
func (s *Session) View() render.View { return s.view }

// Version increases whenever Pixels would return something new.
func (s *Session) Version() int { return s.version }

// CycleView switches to the next layer.
func (s *Session) CycleView() {
	s.view = s.view.Next()
	s.pixels = nil
	s.version++
}

// Regenerate rebuilds the world from the current config, consulting the
// cache when one is attached.
func (s *Session) Regenerate() {
	generate := func() *store.Entry {
		hm := s.gen.Heightmap(s.cfg, s.w, s.h)
		return &store.Entry{Heightmap: hm, Biomes: s.cls.Map(s.cfg, hm)}
	}
	var e *store.Entry
	if s.cache != nil {
		var hit bool
		var err error
		e, hit, err = s.cache.Fetch(store.Key(s.cfg, s.w, s.h), generate)
		if err != nil {
			s.log.Warn("world cache", "err", err)
		}
		s.log.Debug("world cache", "hit", hit)
	}
	if e == nil {
		e = generate()
	}
	s.hm, s.bm = e.Heightmap, e.Biomes
	s.flow = terrain.FlowAccumulation(s.hm, s.cfg.SeaLevel)
	s.stats = terrain.MeasureFlow(s.hm, s.flow, s.cfg.SeaLevel)
	s.palette = render.Palette(s.cfg.Biomes)
	s.pixels = nil
	s.version++
	s.log.Info("world generated",
		"seed", s.cfg.Geology.Heightmap.BaseSeed,
		"size", strconv.Itoa(s.w)+"x"+strconv.Itoa(s.h),
		"land", s.stats.LandFraction,
	)
}

// Reseed sets both seeds and regenerates.
func (s *Session) Reseed(seed uint64) {
	s.apply("seed", strconv.FormatUint(seed, 10))
}

// Pixels renders the active view as RGBA.
func (s *Session) Pixels() []byte {
	if s.pixels != nil {
		return s.pixels
	}
	switch s.view {
	case render.ViewHeight:
		s.pixels = render.HeightRGBA(s.hm)
	case render.ViewBiome:
		s.pixels = render.BiomeRGBA(s.bm, s.palette, render.Water)
	default:
		wv := render.Worldview{SeaLevel: s.cfg.SeaLevel, Palette: s.palette, Rivers: true, Flow: s.flow}
		s.pixels = wv.Render(s.hm, s.bm)
	}
	return s.pixels
}

// FlowMask returns normalized flow for the overlay.
func (s *Session) FlowMask() []float32 { return s.flow.Values() }

// Status lists short lines describing the world for the overlay.
func (s *Session) Status() []string {
	counts, water := biome.Histogram(s.bm, len(s.cfg.Biomes))
	lines := []string{
		"view: " + s.view.String(),
		"seed: " + strconv.FormatUint(s.cfg.Geology.Heightmap.BaseSeed, 10),
		"land: " + strconv.FormatFloat(s.stats.LandFraction*100, 'f', 1, 64) + "%",
		"rivers: " + strconv.FormatFloat(s.stats.RiverFraction*100, 'f', 1, 64) + "%",
		"water: " + strconv.Itoa(water),
	}
	for i, b := range s.cfg.Biomes {
		lines = append(lines, b.ID+": "+strconv.Itoa(counts[i]))
	}
	return lines
}

// Parameters reports the world knobs followed by the pipeline knobs.
func (s *Session) Parameters() core.ParameterSnapshot {
	h := s.cfg.Geology.Heightmap
	cm := s.cfg.Environment.ClimateModel
	world := core.ParameterGroup{
		Name: "World",
		Params: []core.Parameter{
			core.FloatParam("sea_level", "Sea level", s.cfg.SeaLevel),
			core.FloatParam("river_density", "River density", h.RiverDensity),
			core.StringParam("noise", "Noise", h.Noise),
			core.StringParam("humidity_model", "Humidity model", cm.ModelType),
		},
	}
	snap := terrain.ParamsFromConfig(s.cfg).Parameters()
	snap.Groups = append([]core.ParameterGroup{world}, snap.Groups...)
	return snap
}

// ParameterControls lists the knobs the HUD can step.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "sea_level", Label: "Sea level", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "erosion_iterations", Label: "Thermal iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
		{Key: "river_density", Label: "River density", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 2, HasMin: true, HasMax: true},
		{Key: "continental_scale_km", Label: "Continental scale", Type: core.ParamTypeFloat, Step: 250, Min: 250, Max: 8000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer knob and regenerates.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed", "erosion_iterations":
		if value < 0 {
			return false
		}
		return s.apply(key, strconv.Itoa(value))
	}
	return false
}

// SetFloatParameter applies a float knob and regenerates.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "sea_level", "river_density", "continental_scale_km":
		return s.apply(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return false
}

func (s *Session) apply(key, value string) bool {
	next := config.FromMap(s.cfg, map[string]string{key: value})
	if next.Digest() == s.cfg.Digest() {
		return false
	}
	s.cfg = next
	s.Regenerate()
	return true
}
