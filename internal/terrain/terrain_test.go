package terrain

import (
	"math"
	"slices"
	"testing"

	"seedgen/internal/config"
	"seedgen/internal/core"
	"seedgen/internal/noise"
)

func testConfig(seed uint64) *config.WorldConfig {
	cfg := config.Default()
	cfg.Geology.Heightmap.BaseSeed = seed
	cfg.WorldSeed = seed
	return cfg
}

func TestHeightmapSpansUnitRange(t *testing.T) {
	hm := GenerateHeightmap(testConfig(7), 64, 48)
	if hm.W != 64 || hm.H != 48 || len(hm.Values()) != 64*48 {
		t.Fatalf("unexpected dimensions %dx%d", hm.W, hm.H)
	}
	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range hm.Values() {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			t.Fatalf("height %v outside [0,1]", v)
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo != 0 || hi != 1 {
		t.Fatalf("expected min 0 and max 1, got %v and %v", lo, hi)
	}
}

func TestHeightmapDeterministic(t *testing.T) {
	for _, kind := range noise.Kinds() {
		cfg := testConfig(11)
		cfg.Geology.Heightmap.Noise = kind
		a := GenerateHeightmap(cfg, 40, 40)
		g := Generator{Workers: 1}
		b := g.Heightmap(cfg, 40, 40)
		if !slices.Equal(a.Values(), b.Values()) {
			t.Fatalf("%s: heightmap not deterministic across worker counts", kind)
		}
	}
}

func TestSeedsProduceDifferentHeightmaps(t *testing.T) {
	a := GenerateHeightmap(testConfig(1), 64, 64)
	b := GenerateHeightmap(testConfig(2), 64, 64)
	if slices.Equal(a.Values(), b.Values()) {
		t.Fatal("different seeds produced identical heightmaps")
	}
}

func TestZeroAreaHeightmap(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-1, 3}} {
		hm := GenerateHeightmap(testConfig(1), dims[0], dims[1])
		if !hm.Empty() {
			t.Fatalf("%v: expected empty heightmap", dims)
		}
		if ff := FlowAccumulation(hm, 0.4); !ff.Empty() {
			t.Fatalf("%v: expected empty flow field", dims)
		}
	}
}

func TestConstantNoiseGivesUniformHeightmap(t *testing.T) {
	for _, c := range []float64{0, 0.5, -0.7} {
		g := Generator{Noise: noise.ConstantFactory(c)}
		hm := g.Heightmap(testConfig(3), 4, 4)
		first := hm.Get(0, 0)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if hm.Get(x, y) != first {
					t.Fatalf("c=%v: cell (%d,%d)=%v differs from %v", c, x, y, hm.Get(x, y), first)
				}
			}
		}
		if first != 0 {
			t.Fatalf("c=%v: flat field should normalize to 0, got %v", c, first)
		}
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Geology.Heightmap.ContinentalScaleKm = 4
	cfg.Geology.Heightmap.MountainAmplitudeMeters = 9000
	cfg.Geology.Heightmap.RiverDensity = 1
	cfg.Geology.Heightmap.ErosionIterations = 3
	p := ParamsFromConfig(cfg)
	if p.ContinentalScale != 10 {
		t.Fatalf("continental scale should floor at 10, got %v", p.ContinentalScale)
	}
	if p.MountainGain != 2 {
		t.Fatalf("mountain gain should clamp at 2, got %v", p.MountainGain)
	}
	if p.FlowThreshold != 60 {
		t.Fatalf("river density 1 should halve the threshold, got %v", p.FlowThreshold)
	}
	if p.ThermalIterations != 3 {
		t.Fatalf("thermal iterations = %d", p.ThermalIterations)
	}
	snap := p.Parameters()
	if v, ok := snap.Lookup("erosion_iterations"); !ok || v.Value != "3" {
		t.Fatalf("snapshot lookup failed: %+v %v", v, ok)
	}
}

func noisyField(w, h int, seed int64) *core.Field {
	f := core.NewField(w, h)
	src := noise.NewValue(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, noise.To01(src.Eval2(float64(x)*0.3, float64(y)*0.3))+0.2*noise.Hash01(int64(x), int64(y), seed))
		}
	}
	return f
}

func TestThermalErosionConservesMass(t *testing.T) {
	f := noisyField(24, 20, 5)
	before := f.Sum()
	thermalErosion(f, 8, 0.01, 0.15)
	if diff := math.Abs(f.Sum() - before); diff > 1e-9*float64(f.Len()) {
		t.Fatalf("thermal erosion changed total mass by %g", diff)
	}
}

func TestThermalErosionLowersSpike(t *testing.T) {
	f := core.NewField(5, 5)
	f.Set(2, 2, 1)
	thermalErosion(f, 1, 0.03, 0.15)
	if f.At(2, 2) >= 1 {
		t.Fatalf("spike not eroded: %v", f.At(2, 2))
	}
	for _, o := range core.D8 {
		if got := f.At(2+o.DX, 2+o.DY); math.Abs(got-0.15) > 1e-12 {
			t.Fatalf("neighbour %+v received %v, want 0.15", o, got)
		}
	}
}

func TestThermalErosionRespectsTalus(t *testing.T) {
	f := core.NewField(3, 3)
	f.Set(1, 1, 0.02)
	thermalErosion(f, 4, 0.03, 0.15)
	if f.At(1, 1) != 0.02 {
		t.Fatalf("slope below talus moved material: %v", f.At(1, 1))
	}
}

func TestFlowConservation(t *testing.T) {
	f := noisyField(32, 32, 9)
	ff := accumulate(f, math.Inf(-1))
	sinks := 0.0
	for y := 0; y < ff.H; y++ {
		for x := 0; x < ff.W; x++ {
			if ff.Raw(x, y) < 1 {
				t.Fatalf("flow at (%d,%d) below 1: %v", x, y, ff.Raw(x, y))
			}
			if ff.Downslope(x, y) < 0 {
				sinks += ff.Raw(x, y)
			}
		}
	}
	if sinks != float64(f.Len()) {
		t.Fatalf("sink flow %v != cell count %d", sinks, f.Len())
	}
}

func TestFlowRoutesSteepestNeighbour(t *testing.T) {
	f := core.FieldFrom(3, 3, []float64{
		0.9, 0.8, 0.7,
		0.8, 0.6, 0.5,
		0.7, 0.5, 0.1,
	})
	ff := accumulate(f, math.Inf(-1))
	if got := ff.Downslope(1, 1); got != 8 {
		t.Fatalf("centre should drain to bottom-right (8), got %d", got)
	}
	if got := ff.Raw(2, 2); got != 9 {
		t.Fatalf("outlet should collect all 9 cells, got %v", got)
	}
	if ff.Get(2, 2) != 1 {
		t.Fatalf("outlet normalized flow = %v", ff.Get(2, 2))
	}
}

func TestFlowFlatFieldDoesNotPropagate(t *testing.T) {
	f := core.NewField(6, 4)
	ff := accumulate(f, math.Inf(-1))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if ff.Raw(x, y) != 1 || ff.Downslope(x, y) != -1 || ff.Get(x, y) != 1 {
				t.Fatalf("flat cell (%d,%d) propagated flow", x, y)
			}
		}
	}
}

func TestFlowAccumulationSkipsSea(t *testing.T) {
	hm := NewHeightmap(3, 1, []float32{0.9, 0.3, 0.2})
	ff := FlowAccumulation(hm, 0.35)
	if ff.Downslope(0, 0) != 1 {
		t.Fatalf("land cell should drain into the sea cell, got %d", ff.Downslope(0, 0))
	}
	if ff.Downslope(1, 0) != -1 {
		t.Fatal("sea cell must not route")
	}
	if ff.Raw(1, 0) != 2 || ff.Raw(2, 0) != 1 {
		t.Fatalf("unexpected accumulations %v %v", ff.Raw(1, 0), ff.Raw(2, 0))
	}
}

func TestNormalizeFlatField(t *testing.T) {
	f := core.NewField(3, 3)
	for i := range f.Cells() {
		f.Cells()[i] = 4.2
	}
	for _, v := range normalize(f, 1.05) {
		if v != 0 {
			t.Fatalf("flat field normalized to %v", v)
		}
	}
}

func TestNormalizeReachesBounds(t *testing.T) {
	f := core.FieldFrom(4, 1, []float64{-2, 0, 1, 3})
	out := normalize(f, 1.05)
	if out[0] != 0 || out[3] != 1 {
		t.Fatalf("bounds not attained: %v", out)
	}
	if !(out[1] < out[2]) {
		t.Fatalf("normalization not monotonic: %v", out)
	}
}

func TestSmoothLeavesBordersUntouched(t *testing.T) {
	f := noisyField(10, 8, 3)
	orig := f.Clone()
	smooth(f, 3)
	changed := false
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			border := x == 0 || y == 0 || x == f.W-1 || y == f.H-1
			if border && f.At(x, y) != orig.At(x, y) {
				t.Fatalf("border cell (%d,%d) modified", x, y)
			}
			if !border && f.At(x, y) != orig.At(x, y) {
				changed = true
			}
		}
	}
	if !changed {
		t.Fatal("smoothing did not touch the interior")
	}
}

func TestSmoothRemovesSpike(t *testing.T) {
	f := core.NewField(5, 5)
	f.Set(2, 2, 16)
	smooth(f, 1)
	if f.At(2, 2) != 4 || f.At(1, 1) != 1 || f.At(2, 1) != 2 {
		t.Fatalf("unexpected kernel response: centre=%v corner=%v edge=%v", f.At(2, 2), f.At(1, 1), f.At(2, 1))
	}
}

func pitField() *core.Field {
	f := core.NewField(5, 5)
	for i := range f.Cells() {
		f.Cells()[i] = 1
	}
	f.Set(2, 2, 0.5)
	return f
}

func TestFillLakesRaisesPit(t *testing.T) {
	p := DefaultParams()
	p.LakeChance = 1
	f := pitField()
	if n := fillLakes(f, noise.Constant(0), p); n != 1 {
		t.Fatalf("expected one lake, got %d", n)
	}
	if got := f.At(2, 2); math.Abs(got-0.85) > 1e-12 {
		t.Fatalf("lake centre = %v, want 0.85", got)
	}
	if f.At(1, 1) != 1 {
		t.Fatal("rim above the fill level must not change")
	}
}

func TestFillLakesGatedByChance(t *testing.T) {
	p := DefaultParams()
	p.LakeChance = 0
	f := pitField()
	if n := fillLakes(f, noise.Constant(0), p); n != 0 || f.At(2, 2) != 0.5 {
		t.Fatalf("lake filled despite zero chance: n=%d centre=%v", n, f.At(2, 2))
	}
}

func TestCarveCanyonsRespectsGuard(t *testing.T) {
	p := DefaultParams()
	f := core.NewField(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			f.Set(x, y, float64(x))
		}
	}
	orig := f.Clone()
	carveCanyons(f, noise.Constant(0), noise.Constant(0), p)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x <= 1 && f.At(x, y) != orig.At(x, y) {
				t.Fatalf("guarded cell (%d,%d) carved", x, y)
			}
			if x >= 2 && f.At(x, y) >= orig.At(x, y) {
				t.Fatalf("cell (%d,%d) above guard not carved", x, y)
			}
		}
	}
}

func TestCarveCanyonsIgnoresUniformField(t *testing.T) {
	f := core.NewField(4, 4)
	carveCanyons(f, noise.Constant(0), noise.Constant(0), DefaultParams())
	for _, v := range f.Cells() {
		if v != 0 {
			t.Fatal("uniform field should sit at the guard and stay untouched")
		}
	}
}

func TestParamsFromConfigIgnoresNonFiniteScale(t *testing.T) {
	want := DefaultParams().ContinentalScale
	for _, scale := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		cfg := config.Default()
		cfg.Geology.Heightmap.ContinentalScaleKm = scale
		if p := ParamsFromConfig(cfg); p.ContinentalScale != want {
			t.Fatalf("scale %v: continental scale = %v, want %v", scale, p.ContinentalScale, want)
		}
	}
	cfg := testConfig(3)
	cfg.Geology.Heightmap.ContinentalScaleKm = math.Inf(1)
	for _, v := range GenerateHeightmap(cfg, 16, 16).Values() {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			t.Fatalf("height %v outside [0,1] with an infinite scale", v)
		}
	}
}

func TestMeasureFlowMatchesMeasure(t *testing.T) {
	hm := GenerateHeightmap(testConfig(21), 32, 32)
	const sea = 0.4
	want := Measure(hm, sea)
	if got := MeasureFlow(hm, FlowAccumulation(hm, sea), sea); got != want {
		t.Fatalf("MeasureFlow = %+v, Measure = %+v", got, want)
	}
	noFlow := MeasureFlow(hm, nil, sea)
	if noFlow.RiverFraction != 0 || noFlow.LandFraction != want.LandFraction {
		t.Fatalf("nil flow stats = %+v", noFlow)
	}
}

func TestMeasure(t *testing.T) {
	hm := NewHeightmap(4, 1, []float32{0, 0.2, 0.6, 1})
	s := Measure(hm, 0.4)
	if s.Min != 0 || s.Max != 1 {
		t.Fatalf("min/max = %v/%v", s.Min, s.Max)
	}
	if s.LandFraction != 0.5 {
		t.Fatalf("land fraction = %v", s.LandFraction)
	}
	if math.Abs(s.MeanLand-0.8) > 1e-6 {
		t.Fatalf("mean land = %v", s.MeanLand)
	}
	if empty := Measure(&Heightmap{}, 0.4); empty != (Stats{}) {
		t.Fatalf("empty heightmap stats = %+v", empty)
	}
}
