package navmesh

import (
	"testing"

	"github.com/arl/navmesh2d/fixed"
)

func TestFunnelStraightLineThroughOpenCorridor(t *testing.T) {
	m := stripMesh(t, 4)
	s := newAstarScratch(int32(m.TriangleCount()))
	start, end := v(0.5, 0.5), v(3.5, 0.5)
	startTri := m.FindTriangle(start)
	endTri := m.FindTriangle(end)

	_, portals, ok := m.findCorridor(s, startTri, endTri, start, end)
	if !ok {
		t.Fatal("expected a corridor across the strip")
	}

	path := funnel(start, end, portals)
	if len(path) != 2 {
		t.Fatalf("expected the funnel to collapse to the straight line, got %v", path)
	}
	if !path[0].Equal(start) || !path[1].Equal(end) {
		t.Fatalf("path = %v, want [start end]", path)
	}

	want := start.Dist(end)
	got := path[0].Dist(path[1])
	if got != want {
		t.Fatalf("length = %s, want %s", got, want)
	}
}

func TestFunnelSameTriangleDegenerate(t *testing.T) {
	start, end := v(0.2, 0.2), v(0.3, 0.3)
	path := funnel(start, end, nil)
	if len(path) != 2 || !path[0].Equal(start) || !path[1].Equal(end) {
		t.Fatalf("degenerate funnel = %v", path)
	}
}

func TestTriArea2Sign(t *testing.T) {
	a, b, c := v(0, 0), v(1, 0), v(0, 1)
	if triArea2(a, b, c) <= fixed.Zero {
		t.Fatal("expected c left of ab to give a positive area")
	}
	if triArea2(a, b, v(0, -1)) >= fixed.Zero {
		t.Fatal("expected c right of ab to give a negative area")
	}
}
