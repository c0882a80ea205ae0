// Package geom implements the 2D geometry primitives the navmesh builder
// and query pipeline are built on: polygon containment, triangle
// predicates and segment intersection, all in Fixed64 arithmetic (spec
// §4.2). Winding and area follow the shoelace formula; containment follows
// the standard ray-cast crossing-parity algorithm, grounded on the same
// predicate shapes the teacher's recast/meshdetail.go uses for its own
// circumcircle and point-in-triangle tests, re-expressed in fixed point.
package geom

import "github.com/arl/navmesh2d/fixed"

// Polygon is an ordered, implicitly-closed sequence of vertices (spec §3).
// Callers guarantee non-self-intersection; the engine enforces no
// inter-obstacle overlap at build time (see navmesh package).
type Polygon []fixed.Vec2

// SignedArea2 returns twice the signed area of p (positive for
// counter-clockwise winding, negative for clockwise). Returning the
// doubled area avoids a division inside a hot predicate; callers that want
// the true area divide by two themselves.
func (p Polygon) SignedArea2() fixed.T {
	var sum fixed.T
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum = sum.Add(p[i].X.Mul(p[j].Y).Sub(p[j].X.Mul(p[i].Y)))
	}
	return sum
}

// CCW reports whether p is wound counter-clockwise.
func (p Polygon) CCW() bool { return p.SignedArea2() > 0 }

// Centroid returns the arithmetic mean of p's vertices, not the precise
// area centroid. Hole carving does not use it: it tests each triangle's
// own vertex mean (Triangle.Centroid) against the obstacle polygon.
func (p Polygon) Centroid() fixed.Vec2 {
	var sx, sy fixed.T
	n := fixed.FromInt(len(p))
	for _, v := range p {
		sx = sx.Add(v.X)
		sy = sy.Add(v.Y)
	}
	return fixed.Vec2{X: sx.Div(n), Y: sy.Div(n)}
}

// AABB returns the axis-aligned bounding box of p as (min, max).
func (p Polygon) AABB() (min, max fixed.Vec2) {
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// Contains reports whether p lies inside the polygon, using the standard
// crossing-parity ray-cast algorithm (spec §4.2) with explicit tie-break on
// horizontal edge crossings.
func (poly Polygon) Contains(p fixed.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			// x of the edge-crossing at scanline p.Y
			xCross := vj.X.Sub(vi.X).Mul(p.Y.Sub(vi.Y)).Div(vj.Y.Sub(vi.Y)).Add(vi.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Edges calls fn once per edge (a, b) of p in winding order.
func (p Polygon) Edges(fn func(a, b fixed.Vec2)) {
	n := len(p)
	for i := 0; i < n; i++ {
		fn(p[i], p[(i+1)%n])
	}
}

// Overlaps reports whether two obstacle polygons overlap, per spec §4.3
// step 1: true if any non-shared edge pair intersects, or if a non-shared
// vertex of one lies inside the other.
func Overlaps(a, b Polygon) bool {
	var aEdges, bEdges [][2]fixed.Vec2
	a.Edges(func(p, q fixed.Vec2) { aEdges = append(aEdges, [2]fixed.Vec2{p, q}) })
	b.Edges(func(p, q fixed.Vec2) { bEdges = append(bEdges, [2]fixed.Vec2{p, q}) })

	for _, ea := range aEdges {
		for _, eb := range bEdges {
			if sameEdge(ea, eb) {
				continue
			}
			if SegmentsIntersect(ea[0], ea[1], eb[0], eb[1]) {
				return true
			}
		}
	}
	for _, v := range a {
		if !vertexOf(v, b) && b.Contains(v) {
			return true
		}
	}
	for _, v := range b {
		if !vertexOf(v, a) && a.Contains(v) {
			return true
		}
	}
	return false
}

func sameEdge(a, b [2]fixed.Vec2) bool {
	return (a[0].Equal(b[0]) && a[1].Equal(b[1])) || (a[0].Equal(b[1]) && a[1].Equal(b[0]))
}

func vertexOf(v fixed.Vec2, poly Polygon) bool {
	for _, p := range poly {
		if p.Equal(v) {
			return true
		}
	}
	return false
}
