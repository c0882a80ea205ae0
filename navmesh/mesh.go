package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

// noNeighbor marks a triangle edge that has no neighbor across it (it lies
// on the mesh boundary).
const noNeighbor = -1

// hardIterationCap bounds every loop whose natural bound scales with
// triangle count (constraint recovery, raycast stepping) against a fixed
// ceiling, so a pathological mesh size can't turn a bounded loop into an
// effectively unbounded one.
const hardIterationCap = 1 << 20

// NavTriangle is three vertex indices and three neighbor triangle indices
// (spec §3): n[i] is the triangle sharing edge (v[i], v[(i+1)%3]), or
// noNeighbor if that edge is on the boundary.
type NavTriangle struct {
	V [3]int32
	N [3]int32
}

// NavMesh is the finalized, read-only navigation mesh (spec §3): a vertex
// pool, a triangle pool with adjacency, a uniform grid for point location,
// and the edge-midpoint / edge-pair-distance caches A* relies on to avoid
// recomputing triangle-crossing costs on every relaxation.
//
// A NavMesh is never mutated after finalize() completes; it is safe to
// query concurrently from multiple goroutines as long as each owns its own
// PathQuery scratch state (spec §5).
type NavMesh struct {
	vertices  []fixed.Vec2
	triangles []NavTriangle

	grid grid

	// edgeMidpoints[3*t+e] is the cached midpoint of edge e of triangle t.
	edgeMidpoints []fixed.Vec2

	// edgePairDistances[3*t+p], p in {0,1,2} for pairs (01),(02),(12), is
	// the cost of crossing triangle t between those two edges' midpoints.
	edgePairDistances []fixed.T

	// neighborEntryEdge[3*t+e] is the edge index on triangle t.N[e] that
	// corresponds to the same shared edge, seen from the neighbor's side.
	neighborEntryEdge []int32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *NavMesh) TriangleCount() int { return len(m.triangles) }

// VertexCount returns the number of vertices in the mesh.
func (m *NavMesh) VertexCount() int { return len(m.vertices) }

// GetTriangle returns the i'th triangle's index/adjacency record.
func (m *NavMesh) GetTriangle(i int) NavTriangle { return m.triangles[i] }

// GetVertex returns the i'th vertex.
func (m *NavMesh) GetVertex(i int) fixed.Vec2 { return m.vertices[i] }

// GetTriangleGeometry returns the three live vertex positions of triangle
// i, as a geom.Triangle ready for the predicates in the geom package. This
// supplements the index-only GetTriangle for debug rendering, export
// tooling and tests (SPEC_FULL §4).
func (m *NavMesh) GetTriangleGeometry(i int) geom.Triangle {
	tr := m.triangles[i]
	return geom.Triangle{m.vertices[tr.V[0]], m.vertices[tr.V[1]], m.vertices[tr.V[2]]}
}

// IsValidTriangle reports whether i addresses a live triangle.
func (m *NavMesh) IsValidTriangle(i int32) bool {
	return i >= 0 && int(i) < len(m.triangles)
}

// rawTriangle is the input to finalize: three vertices in winding order,
// prior to vertex interning and adjacency computation.
type rawTriangle [3]fixed.Vec2

// finalize builds a NavMesh from a final triangle set: it interns
// vertices, computes adjacency, builds the uniform grid and precomputes
// the edge-midpoint and edge-pair-distance caches (spec §4.5). Build goes
// through it; Decode restores vertices, triangles and adjacency from the
// stream and then runs the same buildGrid and buildCaches steps.
func finalize(tris []rawTriangle, logger Logger) (*NavMesh, error) {
	if len(tris) == 0 {
		return nil, &BuildError{Kind: ErrEmptyTriangulation}
	}

	m := &NavMesh{}
	vertexIndex := make(map[fixed.Vec2]int32, len(tris)*3)

	internVertex := func(v fixed.Vec2) int32 {
		if idx, ok := vertexIndex[v]; ok {
			return idx
		}
		idx := int32(len(m.vertices))
		vertexIndex[v] = idx
		m.vertices = append(m.vertices, v)
		return idx
	}

	m.triangles = make([]NavTriangle, len(tris))
	for i, t := range tris {
		var nt NavTriangle
		for k := 0; k < 3; k++ {
			nt.V[k] = internVertex(t[k])
			nt.N[k] = noNeighbor
		}
		m.triangles[i] = nt
	}

	if err := m.computeAdjacency(logger); err != nil {
		return nil, err
	}
	m.buildGrid()
	m.buildCaches()
	return m, nil
}

// edgeKey is an unordered pair of vertex indices, used to find the other
// triangle sharing an edge (spec §4.5 step 2).
type edgeKey struct{ a, b int32 }

func makeEdgeKey(a, b int32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// computeAdjacency finds, for each triangle edge, the unique other
// triangle sharing it (spec §4.5 step 2, §8 "Adjacency symmetry"). An edge
// shared by more than two triangles is logged as an error and returned as
// a BuildError ("non-manifold triangulation").
func (m *NavMesh) computeAdjacency(logger Logger) error {
	type owner struct {
		tri, edge int32
	}
	edges := make(map[edgeKey][]owner, len(m.triangles)*3/2)

	for ti := range m.triangles {
		t := &m.triangles[ti]
		for e := 0; e < 3; e++ {
			a, b := t.V[e], t.V[(e+1)%3]
			k := makeEdgeKey(a, b)
			edges[k] = append(edges[k], owner{int32(ti), int32(e)})
		}
	}

	for k, owners := range edges {
		switch len(owners) {
		case 1:
			// boundary edge, nothing to link
		case 2:
			o1, o2 := owners[0], owners[1]
			m.triangles[o1.tri].N[o1.edge] = o2.tri
			m.triangles[o2.tri].N[o2.edge] = o1.tri
		default:
			logf(logger, LogError, "edge %v shared by %d triangles, expected at most 2", k, len(owners))
			return &BuildError{Kind: ErrEmptyTriangulation, Detail: "non-manifold triangulation"}
		}
	}
	return nil
}
