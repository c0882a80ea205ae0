package navmesh

import (
	"testing"

	"github.com/arl/navmesh2d/geom"
)

func TestBuildOpenField(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	m, err := Build(boundary, nil, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.TriangleCount() == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	if !m.IsPointOnMesh(v(5, 5)) {
		t.Fatal("center of the field should be on the mesh")
	}
}

func TestBuildRejectsTooFewBoundaryVertices(t *testing.T) {
	_, err := Build(geom.Polygon{v(0, 0), v(1, 1)}, nil, nil, BuildOptions{}, nil)
	be, ok := err.(*BuildError)
	if !ok || be.Kind != ErrTooFewBoundaryVertices {
		t.Fatalf("expected ErrTooFewBoundaryVertices, got %v", err)
	}
}

func TestBuildFromRectMatchesEquivalentPolygon(t *testing.T) {
	m1, err := BuildFromRect(v(0, 0), v(10, 10), nil, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("BuildFromRect: %v", err)
	}
	m2, err := Build(geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}, nil, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m1.TriangleCount() != m2.TriangleCount() {
		t.Fatalf("triangle counts differ: %d vs %d", m1.TriangleCount(), m2.TriangleCount())
	}
}

func TestBuildWithMaxTriangleCountSubdivides(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	m, err := Build(boundary, nil, nil, BuildOptions{MaxTriangleCount: 20}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.TriangleCount() < 20 {
		t.Fatalf("expected at least 20 triangles, got %d", m.TriangleCount())
	}
}

func TestBuildAdjacencyIsSymmetric(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	obstacle := geom.Polygon{v(4, 4), v(6, 4), v(6, 6), v(4, 6)}
	m, err := Build(boundary, []geom.Polygon{obstacle}, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for ti := 0; ti < m.TriangleCount(); ti++ {
		tr := m.GetTriangle(ti)
		for e := 0; e < 3; e++ {
			nb := tr.N[e]
			if nb == noNeighbor {
				continue
			}
			found := false
			for ne := 0; ne < 3; ne++ {
				if m.GetTriangle(int(nb)).N[ne] == int32(ti) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("triangle %d edge %d points to %d, which does not point back", ti, e, nb)
			}
		}
	}
}
