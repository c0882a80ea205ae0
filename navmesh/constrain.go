package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
	"github.com/aurelien-rainone/math32"
)

// recoverConstraints walks the mesh for every boundary/obstacle edge not
// already present and flips crossed edges until the constraint edge
// appears, reverting any flip that would produce a non-positive-area
// triangle (spec §4.3 step 4). Iterations are bounded at 2*len(tris) for
// each constraint edge; edges that cannot be recovered within the bound are
// dropped with a logged warning rather than failing the build (spec §4.3
// "Failure semantics").
func recoverConstraints(verts []fixed.Vec2, tris []triIndices, constraints []edgeOrdered, logger Logger) []triIndices {
	maxIter := int(math32.MinInt32(int32(2*len(tris)), hardIterationCap))
	if maxIter == 0 {
		maxIter = 1
	}
	for _, c := range constraints {
		if edgeExists(tris, c.a, c.b) {
			continue
		}
		if !recoverEdge(verts, &tris, c.a, c.b, maxIter) {
			logf(logger, LogWarning, "could not recover constraint edge (%d,%d) within %d iterations", c.a, c.b, maxIter)
		}
	}
	return tris
}

func edgeExists(tris []triIndices, a, b int32) bool {
	for _, t := range tris {
		for e := 0; e < 3; e++ {
			x, y := t[e], t[(e+1)%3]
			if (x == a && y == b) || (x == b && y == a) {
				return true
			}
		}
	}
	return false
}

// findTrianglePairSharingEdge locates the two triangles whose opposite
// windings both contain directed edge (u,v)/(v,u): every interior edge of
// a consistently-wound triangulation appears exactly once in each
// direction.
func findTrianglePairSharingEdge(tris []triIndices, u, v int32) (ti1, ei1, ti2, ei2 int, ok bool) {
	ti1, ti2 = -1, -1
	for ti, t := range tris {
		for e := 0; e < 3; e++ {
			x, y := t[e], t[(e+1)%3]
			if x == u && y == v {
				ti1, ei1 = ti, e
			}
			if x == v && y == u {
				ti2, ei2 = ti, e
			}
		}
	}
	if ti1 < 0 || ti2 < 0 {
		return 0, 0, 0, 0, false
	}
	return ti1, ei1, ti2, ei2, true
}

// quadConvex reports whether the quadrilateral u,o1,v,o2 (in perimeter
// order) is strictly convex, the precondition for flipping diagonal (u,v)
// to (o1,o2) without producing an inverted triangle.
func quadConvex(verts []fixed.Vec2, u, o1, v, o2 int32) bool {
	pts := [4]fixed.Vec2{verts[u], verts[o1], verts[v], verts[o2]}
	sign := 0
	for i := 0; i < 4; i++ {
		a, b, c := pts[i], pts[(i+1)%4], pts[(i+2)%4]
		cr := b.Sub(a).Cross(c.Sub(b))
		var s int
		switch {
		case cr > 0:
			s = 1
		case cr < 0:
			s = -1
		default:
			return false
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

// recoverEdge flips triangulation edges strictly crossed by segment (a,b)
// until (a,b) itself becomes an edge, or the iteration bound is spent.
// Returns whether the edge was recovered.
func recoverEdge(verts []fixed.Vec2, trisPtr *[]triIndices, a, b int32, maxIter int) bool {
	tris := *trisPtr
	pa, pb := verts[a], verts[b]

	var queue []edgeOrdered
	for _, t := range tris {
		for e := 0; e < 3; e++ {
			u, v := t[e], t[(e+1)%3]
			if u == a || u == b || v == a || v == b {
				continue
			}
			if geom.SegmentsIntersect(pa, pb, verts[u], verts[v]) {
				queue = append(queue, edgeOrdered{u, v})
			}
		}
	}

	iterations := 0
	for len(queue) > 0 && iterations < maxIter {
		iterations++
		e := queue[0]
		queue = queue[1:]

		ti1, ei1, ti2, ei2, ok := findTrianglePairSharingEdge(tris, e.a, e.b)
		if !ok {
			continue // already flipped away by a previous step
		}
		o1 := tris[ti1][(ei1+2)%3]
		o2 := tris[ti2][(ei2+2)%3]

		if !quadConvex(verts, e.a, o1, e.b, o2) {
			continue // cannot flip without inverting a triangle; give up on this edge
		}

		oldT1, oldT2 := tris[ti1], tris[ti2]
		newT1 := triIndices{e.a, o2, o1}
		newT2 := triIndices{o2, e.b, o1}

		if triSignedArea2(verts, newT1) <= 0 || triSignedArea2(verts, newT2) <= 0 {
			tris[ti1], tris[ti2] = oldT1, oldT2 // revert, per spec §4.3 step 4
			continue
		}
		tris[ti1], tris[ti2] = newT1, newT2

		if (o1 == a && o2 == b) || (o1 == b && o2 == a) {
			continue // constraint recovered
		}
		if geom.SegmentsIntersect(pa, pb, verts[o1], verts[o2]) {
			queue = append(queue, edgeOrdered{o1, o2})
		}
	}

	*trisPtr = tris
	return edgeExists(tris, a, b)
}

func triSignedArea2(verts []fixed.Vec2, t triIndices) fixed.T {
	return verts[t[1]].Sub(verts[t[0]]).Cross(verts[t[2]].Sub(verts[t[0]]))
}
