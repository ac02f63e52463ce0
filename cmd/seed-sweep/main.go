package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"seedgen/internal/app"
	"seedgen/internal/biome"
	"seedgen/internal/config"
	"seedgen/internal/terrain"
)

type seedResult struct {
	seed     uint64
	stats    terrain.Stats
	counts   []int
	water    int
	dominant string
}

func (r seedResult) String() string {
	return fmt.Sprintf("seed=%-8d land=%5.1f%% mean=%.3f rivers=%5.2f%% span=[%.2f,%.2f] dominant=%s",
		r.seed, r.stats.LandFraction*100, r.stats.MeanLand, r.stats.RiverFraction*100, r.stats.Min, r.stats.Max, r.dominant)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	first := flag.Uint64("from", 1, "first seed to generate")
	count := flag.Int("count", 32, "number of consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "rows to print")
	flag.Parse()

	base, err := cfg.World()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger()

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %dx%d)\n", *count, *first, *workers, cfg.Width, cfg.Height)

	jobs := make(chan uint64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := terrain.Generator{Logger: logger, Workers: 1}
			cls := biome.Classifier{Logger: logger, Workers: 1}
			for seed := range jobs {
				results <- runSeed(base, seed, cfg.Width, cfg.Height, gen, cls)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- *first + uint64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].stats.LandFraction != all[j].stats.LandFraction {
			return all[i].stats.LandFraction > all[j].stats.LandFraction
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d seeds by land fraction (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	if len(all) == 0 {
		return
	}
	totals := make([]int, len(base.Biomes))
	for _, res := range all {
		for i, c := range res.counts {
			totals[i] += c
		}
	}
	var parts []string
	for i, b := range base.Biomes {
		parts = append(parts, fmt.Sprintf("%s=%d", b.ID, totals[i]))
	}
	fmt.Printf("\nBiome cells across sweep: %s\n", strings.Join(parts, " "))
}

func runSeed(base *config.WorldConfig, seed uint64, w, h int, gen terrain.Generator, cls biome.Classifier) seedResult {
	cfg := base.Clone()
	cfg.WorldSeed = seed
	cfg.Geology.Heightmap.BaseSeed = seed

	hm := gen.Heightmap(cfg, w, h)
	bm := cls.Map(cfg, hm)
	counts, water := biome.Histogram(bm, len(cfg.Biomes))

	res := seedResult{seed: seed, stats: terrain.Measure(hm, cfg.SeaLevel), counts: counts, water: water, dominant: "-"}
	best := 0
	for i, c := range counts {
		if c > best {
			best = c
			res.dominant = cfg.Biomes[i].ID
		}
	}
	return res
}
