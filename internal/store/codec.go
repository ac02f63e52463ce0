package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"seedgen/internal/biome"
	"seedgen/internal/terrain"
)

const (
	magic = "SGW1"
	// noBiome marks unassigned cells in the encoded biome plane.
	noBiome = 255
	// MaxBiomes is the number of biome indices the byte plane can hold.
	MaxBiomes = noBiome
)

// ErrCorrupt is returned when a stored value cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt entry")

// Encode writes an entry as: magic, width, height (uint32 LE), the float32
// height plane, then one byte per cell for biomes with 255 meaning none.
func Encode(e *Entry) ([]byte, error) {
	hm, bm := e.Heightmap, e.Biomes
	if hm == nil || bm == nil {
		return nil, errors.New("store: entry needs a heightmap and a biome map")
	}
	if hm.W != bm.W || hm.H != bm.H {
		return nil, fmt.Errorf("store: heightmap %dx%d and biome map %dx%d differ", hm.W, hm.H, bm.W, bm.H)
	}
	w, h := hm.W, hm.H
	buf := bytes.NewBuffer(make([]byte, 0, len(magic)+8+w*h*5))
	buf.WriteString(magic)
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(w))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(h))
	buf.Write(hdr[:])

	var cell [4]byte
	for _, v := range hm.Values() {
		binary.LittleEndian.PutUint32(cell[:], math.Float32bits(v))
		buf.Write(cell[:])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx, ok := bm.Get(x, y)
			if !ok {
				buf.WriteByte(noBiome)
				continue
			}
			if idx >= MaxBiomes {
				return nil, fmt.Errorf("store: biome index %d does not fit a byte", idx)
			}
			buf.WriteByte(byte(idx))
		}
	}
	return buf.Bytes(), nil
}

// Decode parses a value written by Encode.
func Decode(b []byte) (*Entry, error) {
	if len(b) < len(magic)+8 || string(b[:len(magic)]) != magic {
		return nil, ErrCorrupt
	}
	b = b[len(magic):]
	w := int(binary.LittleEndian.Uint32(b[0:]))
	h := int(binary.LittleEndian.Uint32(b[4:]))
	b = b[8:]
	n := w * h
	if w < 0 || h < 0 || len(b) != n*5 {
		return nil, fmt.Errorf("%w: %dx%d with %d payload bytes", ErrCorrupt, w, h, len(b))
	}
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	plane := b[n*4:]
	bm := biome.NewMap(w, h)
	for i, v := range plane {
		if v != noBiome {
			bm.Set(i%w, i/w, int(v))
		}
	}
	return &Entry{Heightmap: terrain.NewHeightmap(w, h, vals), Biomes: bm}, nil
}
