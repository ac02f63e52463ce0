package terrain

import (
	"math"

	"seedgen/internal/core"
	"seedgen/internal/noise"
)

const (
	seaBias      = 0.1
	warpStrength = 0.5
	coastalWidth = 0.18
	ridgeSharp   = 1.7
	// mapSpan is how many continental scales the map covers edge to edge.
	mapSpan = 4
	// shelfRelief keeps the sea floor from collapsing to a single value.
	shelfRelief = 0.05
)

var (
	ridgeAxis1 = axis(25)
	ridgeAxis2 = axis(-40)
)

type direction struct{ ax, ay, ox, oy float64 }

func axis(deg float64) direction {
	t := deg / 180 * math.Pi
	return direction{ax: math.Cos(t), ay: math.Sin(t), ox: -math.Sin(t), oy: math.Cos(t)}
}

// synthesizer samples raw elevation. Every cell is a pure function of its
// coordinates and the noise set, so rows may be filled in any order.
type synthesizer struct {
	set     *noise.Set
	scale   float64
	gain    float64
	offX    float64
	offY    float64
	fCont   float64
	fDetail float64
	fRidge  float64
	fWarp   float64
	w1, h1  float64
}

func newSynthesizer(set *noise.Set, p Params, w, h int) *synthesizer {
	scale := math.Max(p.ContinentalScale, 10)
	fc := 0.5 / scale
	return &synthesizer{
		set:     set,
		scale:   scale,
		gain:    p.MountainGain,
		offX:    math.Sin(float64(p.Seed)*12345.6789) * 1000,
		offY:    math.Cos(float64(p.Seed)*98765.4321) * 1000,
		fCont:   fc,
		fDetail: 4 * fc,
		fRidge:  2 * fc,
		fWarp:   fc,
		w1:      float64(max(w-1, 1)),
		h1:      float64(max(h-1, 1)),
	}
}

func (s *synthesizer) sample(x, y int) float64 {
	px := float64(x)/s.w1*s.scale*mapSpan + s.offX
	py := float64(y)/s.h1*s.scale*mapSpan + s.offY

	wx := s.set.Warp.Eval2(px*s.fWarp, py*s.fWarp)
	wy := s.set.Warp.Eval2((px+100)*s.fWarp, (py-50)*s.fWarp)
	xw := px + wx*warpStrength*s.scale
	yw := py + wy*warpStrength*s.scale

	cont := s.set.Continent.Eval2(xw*s.fCont, yw*s.fCont)
	land := math.Max(cont-seaBias, 0)

	eps := 0.5 * s.scale
	dx := s.set.Continent.Eval2((xw+eps)*s.fCont, yw*s.fCont) - cont
	dy := s.set.Continent.Eval2(xw*s.fCont, (yw+eps)*s.fCont) - cont
	grad := clamp(2*math.Hypot(dx, dy), 0, 1.5)

	detail := 0.0
	amp, f := 1.0, s.fDetail
	for i := 0; i < 3; i++ {
		detail += amp * s.set.Detail.Eval2(xw*f, yw*f)
		amp *= 0.5
		f *= 2
	}
	detail *= 0.25

	a1, a2 := ridgeAxis1, ridgeAxis2
	u1 := (xw*a1.ax + yw*a1.ay) * s.fRidge
	v1 := (xw*a1.ox + yw*a1.oy) * s.fRidge * 0.35
	u2 := (xw*a2.ax + yw*a2.ay) * s.fRidge * 0.9
	v2 := (xw*a2.ox + yw*a2.oy) * s.fRidge * 0.4
	ridge := 0.6*ridgeShape(s.set.Ridge1.Eval2(u1, v1)) + 0.4*ridgeShape(s.set.Ridge2.Eval2(u2, v2))

	mountain := clamp(ridge*land*grad, 0, 2) * s.gain
	coastal := clamp(land/coastalWidth, 0, 1)

	elev := math.Pow(land, 1.2) + detail*coastal + mountain*(0.6+0.7*coastal) + shelfRelief*noise.To01(cont)
	return math.Max(elev, 0)
}

func ridgeShape(n float64) float64 {
	return math.Pow(math.Max(1-math.Abs(n), 0), ridgeSharp)
}

// fillRow writes one row of raw elevation into f.
func (s *synthesizer) fillRow(f *core.Field, y int) {
	row := f.Cells()[y*f.W : (y+1)*f.W]
	for x := range row {
		row[x] = s.sample(x, y)
	}
}
