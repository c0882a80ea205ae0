package navmesh

import (
	"testing"

	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

func totalArea(verts []fixed.Vec2, tris []triIndices) fixed.T {
	var sum fixed.T
	for _, tr := range tris {
		a := geom.Triangle{verts[tr[0]], verts[tr[1]], verts[tr[2]]}.SignedArea2().Abs()
		sum = sum.Add(a)
	}
	return sum
}

func TestDelaunayTriangulateSquareCoversArea(t *testing.T) {
	pts := []fixed.Vec2{v(0, 0), v(4, 0), v(4, 4), v(0, 4)}
	tris := delaunayTriangulate(pts)
	if len(tris) == 0 {
		t.Fatal("expected at least one triangle")
	}
	want := fixed.FromInt(4 * 4 * 2) // twice the square's area, shoelace convention
	got := totalArea(pts, tris)
	if got != want {
		t.Fatalf("triangulated area (doubled) = %v, want %v", got, want)
	}
}

func TestDelaunayTriangulateExcludesSuperTriangleVertices(t *testing.T) {
	pts := []fixed.Vec2{v(0, 0), v(4, 0), v(4, 4), v(0, 4), v(2, 2)}
	tris := delaunayTriangulate(pts)
	n := int32(len(pts))
	for _, tr := range tris {
		for _, idx := range tr {
			if idx >= n {
				t.Fatalf("triangle %v references a super-triangle vertex", tr)
			}
		}
	}
}

func TestDelaunayTriangulateTooFewPoints(t *testing.T) {
	if tris := delaunayTriangulate([]fixed.Vec2{v(0, 0), v(1, 1)}); tris != nil {
		t.Fatalf("expected nil for <3 points, got %v", tris)
	}
}

func TestDelaunayCircumcircleEmptiness(t *testing.T) {
	pts := []fixed.Vec2{v(0, 0), v(4, 0), v(4, 4), v(0, 4), v(2, 2)}
	tris := delaunayTriangulate(pts)
	for _, tr := range tris {
		geoTri := geom.Triangle{pts[tr[0]], pts[tr[1]], pts[tr[2]]}
		for i, p := range pts {
			if int32(i) == tr[0] || int32(i) == tr[1] || int32(i) == tr[2] {
				continue
			}
			if geoTri.CircumcircleContains(p) {
				t.Fatalf("triangle %v's circumcircle contains point %d (%v): not Delaunay", tr, i, p)
			}
		}
	}
}
