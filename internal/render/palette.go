// Package render turns heightmaps and biome maps into RGBA pixel buffers.
package render

import (
	"image/color"

	"seedgen/internal/config"
)

var (
	// Water is used for unassigned cells in the flat biome view.
	Water = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	shallowWater = color.RGBA{R: 70, G: 140, B: 200, A: 255}
	deepWater    = color.RGBA{R: 10, G: 30, B: 80, A: 255}
	riverColor   = color.RGBA{R: 30, G: 120, B: 220, A: 255}
	beachColor   = color.RGBA{R: 210, G: 190, B: 120, A: 255}
	snowColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var knownBiomes = map[string]color.RGBA{
	"temperate_forest": {R: 34, G: 139, B: 34, A: 255},
	"hot_desert":       {R: 210, G: 180, B: 80, A: 255},
	"cold_mountains":   {R: 160, G: 160, B: 170, A: 255},
	"tundra":           {R: 150, G: 180, B: 160, A: 255},
}

// Palette returns one colour per configured biome. An explicit colour in the
// config wins, then the stock colours by id, then a colour hashed from the id.
func Palette(biomes []config.BiomeConfig) []color.RGBA {
	out := make([]color.RGBA, len(biomes))
	for i, b := range biomes {
		switch {
		case len(b.Color) == 3:
			out[i] = color.RGBA{R: b.Color[0], G: b.Color[1], B: b.Color[2], A: 255}
		default:
			if c, ok := knownBiomes[b.ID]; ok {
				out[i] = c
				continue
			}
			out[i] = hashColor(b.ID)
		}
	}
	return out
}

func hashColor(id string) color.RGBA {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = h*31 + uint32(id[i])
	}
	r := 80 + uint8(h&0x7F)
	h >>= 7
	g := 80 + uint8(h&0x7F)
	h >>= 7
	b := 80 + uint8(h&0x7F)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w),
		A: 255,
	}
}

func shadeColor(c color.RGBA, shade float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v)*shade + 0.5
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 255}
}
