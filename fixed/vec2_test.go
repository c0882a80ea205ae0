package fixed

import "testing"

func approxEq(a, b T) bool {
	d := a.Sub(b)
	return d.Abs() < FromFloat64(1e-4)
}

func TestVec2AddSub(t *testing.T) {
	a := Vec2FromFloat64(1, 2)
	b := Vec2FromFloat64(3, 4)
	got := a.Add(b)
	want := Vec2FromFloat64(4, 6)
	if !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got := b.Sub(a); !got.Equal(Vec2FromFloat64(2, 2)) {
		t.Errorf("Sub = %v", got)
	}
}

func TestVec2Dot(t *testing.T) {
	a := Vec2FromFloat64(1, 0)
	b := Vec2FromFloat64(0, 1)
	if got := a.Dot(b); got != Zero {
		t.Errorf("perpendicular dot = %v, want 0", got)
	}
}

func TestVec2Cross(t *testing.T) {
	a := Vec2FromFloat64(1, 0)
	b := Vec2FromFloat64(0, 1)
	if got := a.Cross(b); !approxEq(got, One) {
		t.Errorf("cross = %v, want 1", got.Float64())
	}
	if got := b.Cross(a); !approxEq(got, One.Neg()) {
		t.Errorf("cross = %v, want -1", got.Float64())
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2FromFloat64(-4, -4)
	b := Vec2FromFloat64(4, 4)
	got := a.Dist(b).Float64()
	want := 11.3137084
	if d := got - want; d < -1e-3 || d > 1e-3 {
		t.Errorf("Dist = %v, want ~%v", got, want)
	}
}

func TestVec2Midpoint(t *testing.T) {
	a := Vec2FromFloat64(0, 0)
	b := Vec2FromFloat64(2, 4)
	got := a.Midpoint(b)
	want := Vec2FromFloat64(1, 2)
	if !got.Equal(want) {
		t.Errorf("Midpoint = %v, want %v", got, want)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	z := Vec2{}
	if got := z.Normalize(); !got.Equal(z) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}
