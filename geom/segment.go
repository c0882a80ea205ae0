package geom

import "github.com/arl/navmesh2d/fixed"

// SegmentsIntersect reports whether segment (p1,p2) properly crosses
// segment (p3,p4), using four cross-product sign tests with strict
// inequalities (spec §4.2). Collinear overlaps are treated as
// non-intersecting: shared endpoints are handled by the caller (e.g.
// Overlaps skips edges known to be identical), not by this predicate.
func SegmentsIntersect(p1, p2, p3, p4 fixed.Vec2) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// direction returns the cross product (c-a) x (b-a), whose sign tells
// which side of line (a,b) point c falls on.
func direction(a, b, c fixed.Vec2) fixed.T {
	return b.Sub(a).Cross(c.Sub(a))
}

// ClosestPointOnSegment returns the point on segment (a,b) nearest to p,
// and the squared distance to it.
func ClosestPointOnSegment(p, a, b fixed.Vec2) (closest fixed.Vec2, distSqr fixed.T) {
	ab := b.Sub(a)
	lenSqr := ab.LenSqr()
	if lenSqr == fixed.Zero {
		return a, p.DistSqr(a)
	}
	t := p.Sub(a).Dot(ab).Div(lenSqr)
	if t < fixed.Zero {
		t = fixed.Zero
	} else if t > fixed.One {
		t = fixed.One
	}
	closest = a.Add(ab.Scale(t))
	return closest, p.DistSqr(closest)
}

// DistToSegmentSqr returns the squared distance from p to segment (a,b).
func DistToSegmentSqr(p, a, b fixed.Vec2) fixed.T {
	_, d := ClosestPointOnSegment(p, a, b)
	return d
}
