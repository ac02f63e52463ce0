// Package store caches generated worlds in LevelDB so repeated runs with the
// same config and dimensions skip generation.
package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"seedgen/internal/biome"
	"seedgen/internal/config"
	"seedgen/internal/terrain"
)

// ErrNotFound is returned for cache misses.
var ErrNotFound = errors.New("store: entry not found")

// Entry is one cached world.
type Entry struct {
	Heightmap *terrain.Heightmap
	Biomes    *biome.Map
}

// Cache is a LevelDB database of encoded entries.
type Cache struct {
	*leveldb.DB
}

// Open opens or creates a cache directory.
func Open(path string) (*Cache, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	return &Cache{db}, nil
}

// OpenMem opens a cache that lives only in memory.
func OpenMem() (*Cache, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Cache{db}, nil
}

// Key identifies a world by config digest and dimensions.
func Key(cfg *config.WorldConfig, w, h int) string {
	return fmt.Sprintf("world/%s/%dx%d", cfg.Digest(), w, h)
}

// Get loads and decodes an entry.
func (c *Cache) Get(key string) (*Entry, error) {
	v, err := c.DB.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// Put encodes and stores an entry.
func (c *Cache) Put(key string, e *Entry) error {
	b, err := Encode(e)
	if err != nil {
		return err
	}
	return c.DB.Put([]byte(key), b, nil)
}

// Delete removes an entry. Deleting a missing key is not an error.
func (c *Cache) Delete(key string) error {
	return c.DB.Delete([]byte(key), nil)
}

// Fetch returns the cached entry for key or runs generate and stores its
// result. hit reports whether generation was skipped.
func (c *Cache) Fetch(key string, generate func() *Entry) (e *Entry, hit bool, err error) {
	e, err = c.Get(key)
	if err == nil {
		return e, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	e = generate()
	if err := c.Put(key, e); err != nil {
		return e, false, err
	}
	return e, false, nil
}
