package geom

import (
	"testing"

	"github.com/arl/navmesh2d/fixed"
)

func square(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		fixed.Vec2FromFloat64(minX, minY),
		fixed.Vec2FromFloat64(maxX, minY),
		fixed.Vec2FromFloat64(maxX, maxY),
		fixed.Vec2FromFloat64(minX, maxY),
	}
}

func TestPolygonContains(t *testing.T) {
	p := square(-5, -5, 5, 5)
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{4.9, 4.9, true},
		{6, 0, false},
		{0, 6, false},
		{-6, -6, false},
	}
	for _, tt := range tests {
		got := p.Contains(fixed.Vec2FromFloat64(tt.x, tt.y))
		if got != tt.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPolygonCCW(t *testing.T) {
	ccw := square(0, 0, 1, 1)
	if !ccw.CCW() {
		t.Error("square listed CCW should be CCW")
	}
	cw := Polygon{ccw[0], ccw[3], ccw[2], ccw[1]}
	if cw.CCW() {
		t.Error("reversed square should not be CCW")
	}
}

func TestPolygonAABB(t *testing.T) {
	p := square(-1, -2, 3, 4)
	min, max := p.AABB()
	if !min.Equal(fixed.Vec2FromFloat64(-1, -2)) || !max.Equal(fixed.Vec2FromFloat64(3, 4)) {
		t.Errorf("AABB = %v,%v", min, max)
	}
}

func TestOverlappingObstacles(t *testing.T) {
	a := square(-1, -1, 1, 1)
	b := square(0, 0, 2, 2)
	if !Overlaps(a, b) {
		t.Error("expected overlap between intersecting squares")
	}

	c := square(10, 10, 12, 12)
	if Overlaps(a, c) {
		t.Error("expected no overlap between disjoint squares")
	}
}

func TestAdjacentObstaclesDoNotOverlap(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(1, 0, 2, 1)
	if Overlaps(a, b) {
		t.Error("edge-sharing squares should not be reported as overlapping")
	}
}
