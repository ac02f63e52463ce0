//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var flowTint = color.RGBA{R: 64, G: 164, B: 223, A: 0}

// Overlay draws optional layers over the map: the flow mask (F) and the
// world status lines (I).
type Overlay struct {
	src        Source
	scale      int
	showFlow   bool
	showStatus bool
	maskImg    *ebiten.Image
	maskBuf    []byte
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src Source, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.showFlow = !o.showFlow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.showFlow {
		if provider, ok := o.src.(flowProvider); ok {
			if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
				o.maskImg = ebiten.NewImage(size.W, size.H)
				o.maskBuf = make([]byte, 4*total)
			}
			o.drawMask(screen, provider.FlowMask(), flowTint)
		}
	}
	if o.showStatus {
		if provider, ok := o.src.(statusProvider); ok {
			o.drawStatus(screen, provider.Status())
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	const (
		maxAlpha      = 160.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.4
	)
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)
		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawStatus(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	const lineStep = 15
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+panelPadding), float64(len(lines)*lineStep+panelPadding/2))
	op.ColorScale.Scale(0, 0, 0, 0.55)
	screen.DrawImage(o.pixel, op)
	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding/2, (i+1)*lineStep, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
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

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := float64(value) * factor
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(math.Round(scaled))
}
