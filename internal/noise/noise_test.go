package noise

import (
	"math/rand"
	"slices"
	"testing"
)

func TestRegisteredKinds(t *testing.T) {
	want := []string{"perlin", "simplex", "value"}
	if got := Kinds(); !slices.Equal(got, want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown kind should not resolve")
	}
	if MustLookup("nope") == nil {
		t.Fatal("MustLookup should fall back to the default kind")
	}
}

func TestSourcesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for _, kind := range Kinds() {
		src := MustLookup(kind)(42)
		for i := 0; i < 2000; i++ {
			x := rng.Float64()*400 - 200
			y := rng.Float64()*400 - 200
			v := src.Eval2(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("%s Eval2(%f,%f) = %f outside [-1,1]", kind, x, y, v)
			}
		}
	}
}

func TestSourcesDeterministic(t *testing.T) {
	for _, kind := range Kinds() {
		a := MustLookup(kind)(7)
		b := MustLookup(kind)(7)
		for i := 0; i < 100; i++ {
			x := float64(i)*0.37 + 0.11
			y := float64(i)*0.53 - 3.2
			if a.Eval2(x, y) != b.Eval2(x, y) {
				t.Fatalf("%s not deterministic at (%f,%f)", kind, x, y)
			}
		}
	}
}

func TestSeedsProduceDifferentFields(t *testing.T) {
	for _, kind := range Kinds() {
		a := MustLookup(kind)(1)
		b := MustLookup(kind)(2)
		differs := false
		for i := 0; i < 64 && !differs; i++ {
			x := float64(i)*0.71 + 0.13
			y := float64(i)*0.29 + 0.47
			differs = a.Eval2(x, y) != b.Eval2(x, y)
		}
		if !differs {
			t.Fatalf("%s: seeds 1 and 2 produced identical samples", kind)
		}
	}
}

func TestValueNoiseContinuity(t *testing.T) {
	src := NewValue(42)
	v1 := src.Eval2(1.0, 1.0)
	v2 := src.Eval2(1.01, 1.0)
	if d := v1 - v2; d > 0.1 || d < -0.1 {
		t.Fatalf("value noise jumped %f over 0.01", d)
	}
}

func TestConstantIgnoresCoordinates(t *testing.T) {
	f := ConstantFactory(0.25)
	s := f(99)
	if s.Eval2(0, 0) != 0.25 || s.Eval2(-5, 12.5) != 0.25 {
		t.Fatal("constant source must not vary")
	}
	if Constant(3).Eval2(0, 0) != 1 {
		t.Fatal("constant source must clamp to [-1,1]")
	}
}

func TestTo01(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0.5, 1: 1, 2: 1}
	for in, want := range cases {
		if got := To01(in); got != want {
			t.Fatalf("To01(%f) = %f want %f", in, got, want)
		}
	}
}

func TestHash01Range(t *testing.T) {
	for x := int64(-20); x < 20; x++ {
		v := Hash01(x, x*3, 5)
		if v < 0 || v > 1 {
			t.Fatalf("Hash01 out of range: %f", v)
		}
	}
}
