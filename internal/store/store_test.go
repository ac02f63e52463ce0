package store

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"seedgen/internal/biome"
	"seedgen/internal/config"
	"seedgen/internal/terrain"
)

func smallEntry() *Entry {
	hm := terrain.NewHeightmap(3, 2, []float32{0, 0.2, 0.4, 0.6, 0.8, 1})
	bm := biome.NewMap(3, 2)
	bm.Set(1, 0, 2)
	bm.Set(2, 1, 0)
	return &Entry{Heightmap: hm, Biomes: bm}
}

func TestEncodeDecodePreservesNone(t *testing.T) {
	e := smallEntry()
	b, err := Encode(e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := b[len(b)-6]; got != noBiome {
		t.Fatalf("first biome byte = %d, want sentinel", got)
	}
	back, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !slices.Equal(back.Heightmap.Values(), e.Heightmap.Values()) {
		t.Fatal("heights changed")
	}
	if !back.Biomes.Equal(e.Biomes) {
		t.Fatal("biome map changed")
	}
	if _, ok := back.Biomes.Get(0, 0); ok {
		t.Fatal("unassigned cell decoded with a biome")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, b := range [][]byte{nil, []byte("nope"), []byte("SGW1\x02\x00\x00\x00\x02\x00\x00\x00")} {
		if _, err := Decode(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%q: expected ErrCorrupt, got %v", b, err)
		}
	}
}

func TestEncodeRejectsMismatch(t *testing.T) {
	e := smallEntry()
	e.Biomes = biome.NewMap(2, 2)
	if _, err := Encode(e); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestCacheMissThenHit(t *testing.T) {
	c, err := OpenMem()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	cfg := config.Default()
	key := Key(cfg, 3, 2)
	if _, err := c.Get(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	calls := 0
	gen := func() *Entry {
		calls++
		return smallEntry()
	}
	if _, hit, err := c.Fetch(key, gen); err != nil || hit {
		t.Fatalf("first fetch hit=%v err=%v", hit, err)
	}
	e, hit, err := c.Fetch(key, gen)
	if err != nil || !hit || calls != 1 {
		t.Fatalf("second fetch hit=%v err=%v calls=%d", hit, err, calls)
	}
	if e.Heightmap.Get(2, 1) != 1 {
		t.Fatal("cached heightmap corrupted")
	}
	if err := c.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.Get(key); !errors.Is(err, ErrNotFound) {
		t.Fatal("entry survived delete")
	}
}

func TestKeyTracksConfigAndSize(t *testing.T) {
	a := config.Default()
	b := config.Default()
	b.SeaLevel = 0.5
	if Key(a, 8, 8) == Key(b, 8, 8) || Key(a, 8, 8) == Key(a, 8, 9) {
		t.Fatal("keys must differ by config and size")
	}
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c.Put("k", smallEntry()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	c, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close()
	if _, err := c.Get("k"); err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
}
