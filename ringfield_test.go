package ringfield

import "testing"

func TestColorRGBAClamps(t *testing.T) {
	c := Color{510, 127.5, -20}.RGBA(1.4)
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("RGBA = %+v, want R=1 B=0 A=1", c)
	}
	if !approxEqual(c.G, 0.5, 1e-9) {
		t.Errorf("G = %v, want 0.5", c.G)
	}
}

func TestColorScale(t *testing.T) {
	got := ColorWhite.Scale(0.25)
	if got != (Color{63.75, 63.75, 63.75}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestSectionActive(t *testing.T) {
	tests := []struct {
		s    Section
		want bool
	}{
		{SectionNone, false},
		{0, true},
		{3, true},
		{SectionCount, false},
	}
	for _, tt := range tests {
		if got := tt.s.Active(); got != tt.want {
			t.Errorf("Section(%d).Active() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRangeRandom(t *testing.T) {
	rng := testRand(1)
	r := Range{2, 5}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if v < 2 || v >= 5 {
			t.Fatalf("Random = %v, out of [2, 5)", v)
		}
	}
	if v := (Range{3, 3}).Random(rng); v != 3 {
		t.Errorf("degenerate Random = %v, want 3", v)
	}
}

func TestRotationClassString(t *testing.T) {
	if AxisY.String() != "AxisY" || AxisX.String() != "AxisX" {
		t.Errorf("String() = %q, %q", AxisY, AxisX)
	}
}
