package navmesh

import (
	"testing"

	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

func TestFindPathOpenStrip(t *testing.T) {
	m := stripMesh(t, 4)
	q := NewPathQuery(m)

	res := q.FindPath(v(0.5, 0.5), v(3.5, 0.5))
	if !res.Success {
		t.Fatal("expected a path across the open strip")
	}
	if len(res.Path) != 2 {
		t.Fatalf("straight corridor should funnel to 2 points, got %d: %v", len(res.Path), res.Path)
	}
	if !res.Path[0].Equal(v(0.5, 0.5)) || !res.Path[len(res.Path)-1].Equal(v(3.5, 0.5)) {
		t.Fatalf("path endpoints wrong: %v", res.Path)
	}
	want := v(0.5, 0.5).Dist(v(3.5, 0.5))
	if res.Length != want {
		t.Fatalf("length = %v, want %v", res.Length, want)
	}
}

func TestFindPathReuseScratch(t *testing.T) {
	m := stripMesh(t, 4)
	q := NewPathQuery(m)

	first := q.FindPath(v(0.5, 0.5), v(3.5, 0.5))
	second := q.FindPath(v(0.5, 0.5), v(3.5, 0.5))
	if !first.Success || !second.Success {
		t.Fatal("expected both queries to succeed")
	}
	if len(first.Path) != len(second.Path) {
		t.Fatalf("reused scratch produced different path lengths: %d vs %d", len(first.Path), len(second.Path))
	}
}

func TestFindPathClampsOffMeshEndpoints(t *testing.T) {
	m := stripMesh(t, 2)
	q := NewPathQuery(m)

	res := q.FindPath(v(-5, 0.5), v(1.5, 0.5))
	if !res.Success {
		t.Fatal("expected the off-mesh start to be clamped onto the mesh and still find a path")
	}
	if res.Path[0].X != fixed.FromInt(0) {
		t.Fatalf("clamped start.X = %v, want 0", res.Path[0].X)
	}
}

func TestIsPointOnMeshAndClampToMesh(t *testing.T) {
	m := stripMesh(t, 1)

	if !m.IsPointOnMesh(v(0.5, 0.5)) {
		t.Fatal("center of the strip's only cell should be on the mesh")
	}
	if m.IsPointOnMesh(v(5, 5)) {
		t.Fatal("far-away point should not be on the mesh")
	}

	clamped := m.ClampToMesh(v(0.5, 0.5))
	if !clamped.Equal(v(0.5, 0.5)) {
		t.Fatalf("clamping an on-mesh point should be a no-op, got %v", clamped)
	}

	outside := v(-10, 0.5)
	c1 := m.ClampToMesh(outside)
	c2 := m.ClampToMesh(c1)
	if c1 != c2 {
		t.Fatalf("clamp is not idempotent: %v then %v", c1, c2)
	}
	if c1.X != fixed.FromInt(0) {
		t.Fatalf("clamped.X = %v, want 0 (nearest edge of the strip)", c1.X)
	}
}

func TestRaycastStopsAtBoundary(t *testing.T) {
	m := stripMesh(t, 4)
	hit := m.Raycast(v(0.5, 0.5), v(1, 0), fixed.FromInt(10))
	if hit.X != fixed.FromInt(4) {
		t.Fatalf("raycast should stop at the strip's far boundary x=4, got %v", hit)
	}
}

func TestRaycastReachesTargetWithinMesh(t *testing.T) {
	m := stripMesh(t, 4)
	target := v(2.5, 0.5)
	hit := m.Raycast(v(0.5, 0.5), v(1, 0), fixed.FromInt(2))
	if !hit.Equal(target) {
		t.Fatalf("raycast should reach the unobstructed target, got %v want %v", hit, target)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	boundary := geom.Polygon{
		v(0, 0), v(10, 0), v(10, 10), v(0, 10),
	}
	obstacle := geom.Polygon{
		v(4, 2), v(6, 2), v(6, 8), v(4, 8),
	}
	m, err := Build(boundary, []geom.Polygon{obstacle}, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	q := NewPathQuery(m)
	res := q.FindPath(v(1, 5), v(9, 5))
	if !res.Success {
		t.Fatal("expected a detour path around the obstacle")
	}
	straight := v(1, 5).Dist(v(9, 5))
	if res.Length.Cmp(straight) <= 0 {
		t.Fatalf("detour length %v should exceed the blocked straight-line distance %v", res.Length, straight)
	}
	// Waypoints may sit on the obstacle's corners, so only the open interior
	// of the 4..6 x 2..8 rectangle counts as inside.
	for _, p := range res.Path {
		if p.X > fixed.FromInt(4) && p.X < fixed.FromInt(6) && p.Y > fixed.FromInt(2) && p.Y < fixed.FromInt(8) {
			t.Fatalf("path point %v falls inside the obstacle", p)
		}
	}
}

func TestFindPathUnreachableAcrossFullWidthObstacle(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	// Obstacle spans past both sides of the boundary, so it carves a hole
	// all the way across and leaves two mesh regions with no shared edge.
	obstacle := geom.Polygon{v(-1, 4), v(11, 4), v(11, 6), v(-1, 6)}
	m, err := Build(boundary, []geom.Polygon{obstacle}, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	q := NewPathQuery(m)
	res := q.FindPath(v(5, 1), v(5, 9))
	if res.Success {
		t.Fatalf("expected no path across the full-width obstacle, got %v", res.Path)
	}
	if len(res.Path) != 0 {
		t.Fatalf("failed query should return an empty path, got %v", res.Path)
	}
}

func TestBuildRejectsOverlappingObstacles(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	a := geom.Polygon{v(2, 2), v(5, 2), v(5, 5), v(2, 5)}
	b := geom.Polygon{v(3, 3), v(6, 3), v(6, 6), v(3, 6)}

	_, err := Build(boundary, []geom.Polygon{a, b}, nil, BuildOptions{}, nil)
	if err == nil {
		t.Fatal("expected overlapping obstacles to be rejected")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != ErrOverlappingObstacles {
		t.Fatalf("expected ErrOverlappingObstacles, got %v", err)
	}
}
