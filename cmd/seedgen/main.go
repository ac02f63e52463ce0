package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seedgen/internal/app"
	"seedgen/internal/biome"
	"seedgen/internal/config"
	"seedgen/internal/render"
	"seedgen/internal/store"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", ".", "directory for the PNG layers")
	prefix := flag.String("prefix", "", "file name prefix for the PNG layers")
	flag.Parse()

	world, err := cfg.World()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger()
	for _, w := range world.Validate() {
		logger.Warn("config", "field", w.Field, "msg", w.Message)
	}

	var cache *store.Cache
	if cfg.CacheDir != "" {
		if cache, err = store.Open(cfg.CacheDir); err != nil {
			log.Fatal(err)
		}
		defer cache.Close()
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	summarize(logger, world)
	s := app.NewSession(world, cfg.Width, cfg.Height, cache, logger)
	names := map[render.View]string{
		render.ViewWorld:  "worldview.png",
		render.ViewHeight: "heightmap.png",
		render.ViewBiome:  "biomes.png",
	}
	for range names {
		path := filepath.Join(*out, *prefix+names[s.View()])
		img := render.Image(cfg.Width, cfg.Height, s.Pixels())
		if err := render.WritePNG(path, img); err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote layer", "view", s.View().String(), "path", path)
		s.CycleView()
	}

	st := s.Stats()
	fmt.Printf("%s  seed=%d  %dx%d\n", s.Name(), world.Geology.Heightmap.BaseSeed, cfg.Width, cfg.Height)
	fmt.Printf("height   min=%.3f max=%.3f\n", st.Min, st.Max)
	fmt.Printf("land     %.1f%%  mean=%.3f\n", st.LandFraction*100, st.MeanLand)
	fmt.Printf("rivers   %.2f%%\n", st.RiverFraction*100)

	counts, water := biome.Histogram(s.Biomes(), len(world.Biomes))
	total := cfg.Width * cfg.Height
	if total == 0 {
		return
	}
	fmt.Printf("%-24s %8d %6.1f%%\n", "(unassigned)", water, 100*float64(water)/float64(total))
	for i, b := range world.Biomes {
		fmt.Printf("%-24s %8d %6.1f%%\n", b.ID, counts[i], 100*float64(counts[i])/float64(total))
	}
}

func summarize(logger *slog.Logger, w *config.WorldConfig) {
	hm := w.Geology.Heightmap
	cm := w.Environment.ClimateModel
	ids := make([]string, len(w.Biomes))
	for i, b := range w.Biomes {
		ids[i] = b.ID
	}
	logger.Info("world",
		"id", w.WorldID,
		"version", w.SeedVersion,
		"worldSeed", w.WorldSeed,
		"baseSeed", hm.BaseSeed,
		"noise", hm.Noise,
		"seaLevel", w.SeaLevel,
	)
	logger.Info("geology",
		"continentalScaleKm", hm.ContinentalScaleKm,
		"mountainAmplitudeM", hm.MountainAmplitudeMeters,
		"erosionIterations", hm.ErosionIterations,
		"riverDensity", hm.RiverDensity,
		"maxReliefM", hm.MaxReliefMeters,
	)
	logger.Info("climate",
		"model", cm.ModelType,
		"baseTemperatureC", w.Environment.Atmosphere.BaseTemperatureC,
		"lapseRateCPerKm", cm.TemperatureLapseRateCPerKm,
		"precipitationScale", cm.PrecipitationScale,
		"biomes", strings.Join(ids, ","),
	)
}
