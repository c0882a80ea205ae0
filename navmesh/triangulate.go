package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

// triIndices is a triangle as three indices into a shared vertex slice,
// used internally by the triangulator before vertex interning happens
// again at NavMesh.finalize (the triangulator's vertex slice includes the
// super-triangle's three extra vertices, which finalize never sees).
type triIndices [3]int32

// superTriangleMarginFactor scales the input bounding box's largest dimension to
// place the super-triangle's vertices far enough outside it that its
// circumcircle strictly contains every input point (spec §4.3 step 2).
const superTriangleMarginFactor = 20

// edgeOrdered is a directed edge, kept in winding order so Bowyer-Watson
// can tell a shared edge (opposite winding in the two triangles that share
// it) from a boundary edge (unique winding, appears once).
type edgeOrdered struct{ a, b int32 }

// delaunayTriangulate computes an unconstrained Delaunay triangulation of
// points via incremental Bowyer-Watson insertion with a super-triangle
// (spec §4.3 steps 2-3). It is grounded on the circumcircle emptiness test
// recast's delaunayHull/completeFacet (recast/meshdetail.go) use to grow a
// Delaunay hull from a point set, adapted here to Fixed64 and to the
// textbook point-insertion formulation (rather than recast's edge-sweep
// formulation) since this engine triangulates a closed polygon-with-holes
// up front rather than growing a hull incrementally from height-field
// samples.
//
// Returned triangle vertex indices refer to points; the super-triangle's
// three temporary vertices never appear in the result.
func delaunayTriangulate(points []fixed.Vec2) []triIndices {
	if len(points) < 3 {
		return nil
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	dx, dy := max.X.Sub(min.X), max.Y.Sub(min.Y)
	dmax := dx
	if dy > dmax {
		dmax = dy
	}
	if dmax == 0 {
		dmax = fixed.One
	}
	mid := min.Add(max).Scale(fixed.Half)
	margin := dmax.Mul(fixed.FromInt(superTriangleMarginFactor))

	n := int32(len(points))
	verts := make([]fixed.Vec2, n+3)
	copy(verts, points)
	verts[n] = fixed.Vec2{X: mid.X.Sub(margin.Mul(fixed.FromInt(2))), Y: mid.Y.Sub(margin)}
	verts[n+1] = fixed.Vec2{X: mid.X.Add(margin.Mul(fixed.FromInt(2))), Y: mid.Y.Sub(margin)}
	verts[n+2] = fixed.Vec2{X: mid.X, Y: mid.Y.Add(margin.Mul(fixed.FromInt(3)))}

	tris := []triIndices{{n, n + 1, n + 2}}

	for pi := int32(0); pi < n; pi++ {
		p := verts[pi]

		var bad []int
		for ti, tr := range tris {
			geo := geom.Triangle{verts[tr[0]], verts[tr[1]], verts[tr[2]]}
			if geo.CircumcircleContains(p) {
				bad = append(bad, ti)
			}
		}
		if len(bad) == 0 {
			// p lies outside every current circumcircle: this cannot
			// happen for a point inside the super-triangle, but skip
			// rather than corrupt the triangulation if it does (e.g. an
			// exact duplicate point).
			continue
		}

		var boundary []edgeOrdered
		for _, ti := range bad {
			tr := tris[ti]
			for e := 0; e < 3; e++ {
				a, b := tr[e], tr[(e+1)%3]
				shared := false
				for _, tj := range bad {
					if tj == ti {
						continue
					}
					trj := tris[tj]
					for e2 := 0; e2 < 3; e2++ {
						a2, b2 := trj[e2], trj[(e2+1)%3]
						if a2 == b && b2 == a {
							shared = true
							break
						}
					}
					if shared {
						break
					}
				}
				if !shared {
					boundary = append(boundary, edgeOrdered{a, b})
				}
			}
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		filtered := make([]triIndices, 0, len(tris)-len(bad)+len(boundary))
		for ti, tr := range tris {
			if !badSet[ti] {
				filtered = append(filtered, tr)
			}
		}
		for _, e := range boundary {
			filtered = append(filtered, triIndices{e.a, e.b, pi})
		}
		tris = filtered
	}

	final := make([]triIndices, 0, len(tris))
	for _, tr := range tris {
		if tr[0] >= n || tr[1] >= n || tr[2] >= n {
			continue
		}
		final = append(final, tr)
	}
	return final
}
