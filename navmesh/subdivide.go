package navmesh

import "github.com/arl/navmesh2d/fixed"

// subdivide refines tris by repeatedly bisecting the longest edge in the
// mesh until target triangles are reached or a full pass makes no
// progress (spec §4.4). The neighbor sharing the split edge is split at
// the same midpoint in the same step, so the mesh stays conforming; no
// edge is split twice within one pass.
func subdivide(verts []fixed.Vec2, tris []triIndices, target int) ([]fixed.Vec2, []triIndices) {
	for len(tris) < target {
		splitAny := false
		splitThisPass := make(map[edgeOrdered]bool)

		passLen := len(tris)
		for i := 0; i < passLen && len(tris) < target; i++ {
			t := tris[i]
			longestE, longestLen := 0, fixed.T(-1)
			for e := 0; e < 3; e++ {
				a, b := t[e], t[(e+1)%3]
				l := verts[a].DistSqr(verts[b])
				if l > longestLen {
					longestLen = l
					longestE = e
				}
			}
			a, b := t[longestE], t[(longestE+1)%3]
			key := makeUndirected(a, b)
			if splitThisPass[key] {
				continue
			}

			mid := verts[a].Midpoint(verts[b])
			midIdx := int32(len(verts))
			verts = append(verts, mid)
			opp := t[(longestE+2)%3]

			tris[i] = triIndices{a, midIdx, opp}
			newTri := triIndices{midIdx, b, opp}

			// Find the neighbor sharing edge (a,b) — the opposite winding
			// (b,a) — and split it at the same midpoint to keep the mesh
			// conforming (spec §4.4 "the neighbor sharing that edge is
			// split at the same midpoint in the same iteration").
			neighborSplit := false
			for ni := range tris {
				if ni == i {
					continue
				}
				nt := tris[ni]
				for e := 0; e < 3; e++ {
					x, y := nt[e], nt[(e+1)%3]
					if x == b && y == a {
						nopp := nt[(e+2)%3]
						tris[ni] = triIndices{b, midIdx, nopp}
						tris = append(tris, triIndices{midIdx, a, nopp})
						neighborSplit = true
						break
					}
				}
				if neighborSplit {
					break
				}
			}

			tris = append(tris, newTri)
			splitThisPass[key] = true
			splitAny = true
		}

		if !splitAny {
			break
		}
	}
	return verts, tris
}

func makeUndirected(a, b int32) edgeOrdered {
	if a > b {
		a, b = b, a
	}
	return edgeOrdered{a, b}
}
