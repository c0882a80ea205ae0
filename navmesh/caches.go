package navmesh

import "github.com/arl/navmesh2d/fixed"

// edgePairs enumerates the three unordered edge pairs of a triangle in the
// fixed order the spec assigns them: (0,1), (0,2), (1,2) (spec §3).
var edgePairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// buildCaches precomputes the edge-midpoint cache, the edge-pair-distance
// cache and the neighbor-entry-edge table (spec §4.5 steps 4-6). These
// exist purely so A* never recomputes a midpoint or a crossing distance
// while relaxing edges — the caches are keyed by triangle so a query
// thread only ever reads them.
func (m *NavMesh) buildCaches() {
	m.buildEdgeMidpoints()
	m.buildEdgePairDistances()
	m.buildNeighborEntryEdges()
}

func (m *NavMesh) buildEdgeMidpoints() {
	n := len(m.triangles)
	m.edgeMidpoints = make([]fixed.Vec2, 3*n)
	for ti, t := range m.triangles {
		for e := 0; e < 3; e++ {
			a := m.vertices[t.V[e]]
			b := m.vertices[t.V[(e+1)%3]]
			m.edgeMidpoints[3*ti+e] = a.Midpoint(b)
		}
	}
}

func (m *NavMesh) buildEdgePairDistances() {
	n := len(m.triangles)
	m.edgePairDistances = make([]fixed.T, 3*n)
	for ti := range m.triangles {
		for p, pair := range edgePairs {
			a := m.edgeMidpoints[3*ti+pair[0]]
			b := m.edgeMidpoints[3*ti+pair[1]]
			m.edgePairDistances[3*ti+p] = a.Dist(b)
		}
	}
}

// buildNeighborEntryEdges computes, for each exit edge of each triangle,
// the edge index on the neighbor across it that refers to the same shared
// edge (spec §4.5 step 6) — so A*, on arrival, knows which of the
// neighbor's three edges it entered through.
func (m *NavMesh) buildNeighborEntryEdges() {
	n := len(m.triangles)
	m.neighborEntryEdge = make([]int32, 3*n)
	for i := range m.neighborEntryEdge {
		m.neighborEntryEdge[i] = noNeighbor
	}
	for ti := range m.triangles {
		t := &m.triangles[ti]
		for e := 0; e < 3; e++ {
			nb := t.N[e]
			if nb == noNeighbor {
				continue
			}
			a, b := t.V[e], t.V[(e+1)%3]
			nt := &m.triangles[nb]
			for ne := 0; ne < 3; ne++ {
				na, nbv := nt.V[ne], nt.V[(ne+1)%3]
				if (na == a && nbv == b) || (na == b && nbv == a) {
					m.neighborEntryEdge[3*ti+e] = int32(ne)
					break
				}
			}
		}
	}
}
