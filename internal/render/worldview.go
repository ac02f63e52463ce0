package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"seedgen/internal/biome"
	"seedgen/internal/terrain"
)

const (
	slopeScale      = 40
	ambient         = 0.3
	beachWidth      = 0.03
	snowHeightStart = 0.7
	snowLatStart    = 0.5
)

var lightDir = mgl32.Vec3{0.6, 0.6, 1}.Normalize()

// Worldview composes the hill-shaded map: biome colours over land,
// depth-graded water, snow caps toward the poles, beaches and rivers.
type Worldview struct {
	SeaLevel float64
	Palette  []color.RGBA
	// Rivers enables the flow overlay. Flow is computed on demand when nil.
	Rivers bool
	Flow   *terrain.FlowField
}

// Render produces an RGBA buffer the size of hm.
func (v *Worldview) Render(hm *terrain.Heightmap, bm *biome.Map) []byte {
	w, h := hm.W, hm.H
	buf := make([]byte, w*h*4)
	if hm.Empty() {
		return buf
	}
	flow := v.Flow
	if v.Rivers && flow == nil {
		flow = terrain.FlowAccumulation(hm, v.SeaLevel)
	}
	sea := float32(v.SeaLevel)

	for y := 0; y < h; y++ {
		lat := 0.0
		if h > 1 {
			lat = float64(y)/float64(h-1)*2 - 1
		}
		latFactor := clamp01((math.Abs(lat) - snowLatStart) / (1 - snowLatStart))
		for x := 0; x < w; x++ {
			hc := hm.Get(x, y)

			var base color.RGBA
			if idx, ok := bm.Get(x, y); ok && idx < len(v.Palette) {
				base = v.Palette[idx]
			} else {
				depth := clamp01(float64(max(sea-hc, 0)) / math.Max(v.SeaLevel, 1e-6))
				base = blendColors(shallowWater, deepWater, depth)
			}

			heightFactor := clamp01((float64(hc) - snowHeightStart) / (1 - snowHeightStart))
			if snow := heightFactor * latFactor; snow > 0 {
				base = blendColors(base, snowColor, snow)
			}

			if hc > sea {
				if dh := float64(hc - sea); dh < beachWidth {
					base = blendColors(base, beachColor, 1-dh/beachWidth)
				}
				if flow != nil {
					if f := flow.Get(x, y); f > terrain.RiverFlow {
						base = blendColors(base, riverColor, riverIntensity(f))
					}
				}
			}

			putRGBA(buf, y*w+x, shadeColor(base, Shade(hm, x, y)))
		}
	}
	return buf
}

// Shade returns the Lambert term with ambient for cell (x, y), using
// central differences clamped at the edges.
func Shade(hm *terrain.Heightmap, x, y int) float64 {
	xl, xr := max(x-1, 0), min(x+1, hm.W-1)
	yu, yd := max(y-1, 0), min(y+1, hm.H-1)
	dx := hm.Get(xr, y) - hm.Get(xl, y)
	dy := hm.Get(x, yd) - hm.Get(x, yu)
	normal := mgl32.Vec3{-dx * slopeScale, -dy * slopeScale, 1}.Normalize()
	lit := math.Max(float64(normal.Dot(lightDir)), 0)
	return clamp01(ambient + lit*(1-ambient))
}

func riverIntensity(f float32) float64 {
	t := clamp01((float64(f) - terrain.RiverFlow) / (1 - terrain.RiverFlow))
	return math.Pow(t, 0.4)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
