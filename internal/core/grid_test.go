package core

import "testing"

func TestNewFieldZeroArea(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		f := NewField(dims[0], dims[1])
		if !f.Empty() {
			t.Fatalf("NewField(%d,%d) should be empty", dims[0], dims[1])
		}
		lo, hi := f.MinMax()
		if lo != 0 || hi != 0 {
			t.Fatalf("empty field MinMax = %f,%f", lo, hi)
		}
	}
}

func TestFieldCloneIsIndependent(t *testing.T) {
	f := NewField(3, 2)
	f.Set(2, 1, 5)
	c := f.Clone()
	c.Set(2, 1, 7)
	if f.At(2, 1) != 5 {
		t.Fatalf("clone aliases source: got %f", f.At(2, 1))
	}
	if c.Index(2, 1) != 5 {
		t.Fatalf("index(2,1) = %d, want 5", c.Index(2, 1))
	}
}

func TestFieldMinMaxAndSum(t *testing.T) {
	f := FieldFrom(2, 2, []float64{3, -1, 4, 1})
	lo, hi := f.MinMax()
	if lo != -1 || hi != 4 {
		t.Fatalf("MinMax = %f,%f want -1,4", lo, hi)
	}
	if f.Sum() != 7 {
		t.Fatalf("Sum = %f want 7", f.Sum())
	}
	if !FieldFrom(2, 2, []float64{1}).Empty() {
		t.Fatal("FieldFrom with mismatched slice should be empty")
	}
}

func TestD8EnumerationExcludesCentre(t *testing.T) {
	seen := map[Offset]bool{}
	for _, o := range D8 {
		if o.DX == 0 && o.DY == 0 {
			t.Fatal("D8 must not contain the centre")
		}
		seen[o] = true
	}
	if len(seen) != 8 {
		t.Fatalf("D8 has %d distinct offsets", len(seen))
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "World",
		Params: []Parameter{IntParam("seed", "Seed", 42), FloatParam("sea_level", "Sea level", 0.4)},
	}}}
	p, ok := snap.Lookup("sea_level")
	if !ok || p.Value != "0.4" || p.Type != ParamTypeFloat {
		t.Fatalf("unexpected lookup result %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of missing key should fail")
	}
}
