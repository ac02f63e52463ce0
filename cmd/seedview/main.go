//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seedgen/internal/app"
	"seedgen/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
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

	session := app.NewSession(world, cfg.Width, cfg.Height, cache, logger)
	game := app.New(session, cfg.Scale, cfg.HUDWidth)

	ebiten.SetWindowTitle("seedview: " + session.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+cfg.HUDWidth, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
