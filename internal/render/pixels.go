package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"seedgen/internal/biome"
	"seedgen/internal/terrain"
)

func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// HeightRGBA renders normalized heights as grey levels.
func HeightRGBA(hm *terrain.Heightmap) []byte {
	vals := hm.Values()
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		g := uint8(min(max(v, 0), 1) * 255)
		putRGBA(buf, i, color.RGBA{R: g, G: g, B: g, A: 255})
	}
	return buf
}

// BiomeRGBA paints each cell with its biome colour. Cells without a biome,
// or whose index is past the palette, are painted water.
func BiomeRGBA(bm *biome.Map, palette []color.RGBA, water color.RGBA) []byte {
	buf := make([]byte, bm.W*bm.H*4)
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			c := water
			if idx, ok := bm.Get(x, y); ok && idx < len(palette) {
				c = palette[idx]
			}
			putRGBA(buf, y*bm.W+x, c)
		}
	}
	return buf
}

// FlowRGBA tints an existing buffer with normalized flow above threshold.
func FlowRGBA(buf []byte, flow *terrain.FlowField, threshold float32) {
	for i, f := range flow.Values() {
		if f <= threshold {
			continue
		}
		base := i * 4
		c := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: 255}
		putRGBA(buf, i, blendColors(c, riverColor, riverIntensity(f)))
	}
}

// Image wraps an RGBA buffer of the given size without copying.
func Image(w, h int, buf []byte) *image.RGBA {
	return &image.RGBA{Pix: buf, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
