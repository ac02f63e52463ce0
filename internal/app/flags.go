package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"seedgen/internal/config"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config holds the command line options shared by the seedgen tools.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	Seed       int64
	Sets       KVList
	CacheDir   string
	Verbose    bool

	// Viewer only.
	Scale    int
	TPS      int
	HUDWidth int
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Width:    512,
		Height:   256,
		Seed:     -1,
		Scale:    2,
		TPS:      30,
		HUDWidth: 260,
	}
}

// Bind registers the shared flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "world config JSON (defaults to the built-in world)")
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "override base and world seed (negative keeps the config's)")
	fs.Var(&c.Sets, "set", "config override in key=value form (repeatable)")
	fs.StringVar(&c.CacheDir, "cache", c.CacheDir, "LevelDB directory for caching generated worlds")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log pipeline stages at debug level")
}

// BindViewer registers the viewer-only flags on fs.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width (0 hides it)")
}

// World loads the configured world and applies -seed and -set overrides.
func (c *Config) World() (*config.WorldConfig, error) {
	base := config.Default()
	if c.ConfigPath != "" {
		loaded, err := config.Load(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	kv := c.Sets.Map()
	if c.Seed >= 0 {
		kv["seed"] = fmt.Sprint(c.Seed)
	}
	return config.FromMap(base, kv), nil
}

// Logger builds the text logger used by the commands.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
