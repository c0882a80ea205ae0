package geom

import (
	"math/big"

	"github.com/arl/navmesh2d/fixed"
)

// Triangle is three vertices in the plane (spec §3). It is always
// non-degenerate after the navmesh builder's degenerate filter has run
// (|signed area| >= the area epsilon); callers constructing one ad hoc
// (e.g. in tests) make no such guarantee.
type Triangle [3]fixed.Vec2

// minArea2 is the doubled-area epsilon below which a triangle is
// considered degenerate (spec §4.3 step 7: |area| < 1/10000).
var minArea2 = fixed.FromFloat64(2.0 / 10000.0)

// SignedArea2 returns twice the signed area of t (positive if
// counter-clockwise).
func (t Triangle) SignedArea2() fixed.T {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Degenerate reports whether t's area is too small to be numerically
// trustworthy, or any two vertices coincide (spec §4.3 step 7).
func (t Triangle) Degenerate() bool {
	if t[0].Equal(t[1]) || t[1].Equal(t[2]) || t[0].Equal(t[2]) {
		return true
	}
	a := t.SignedArea2()
	return a.Abs() < minArea2
}

// Centroid returns the arithmetic mean of t's vertices.
func (t Triangle) Centroid() fixed.Vec2 {
	third := fixed.One.Div(fixed.FromInt(3))
	sum := t[0].Add(t[1]).Add(t[2])
	return sum.Scale(third)
}

// Contains reports whether p lies inside (or on the boundary of) t, via
// the three signed-edge test (spec §4.2): p is inside iff the three
// signed areas of (edge, p) share a sign, with ties (zero, i.e. on-edge)
// counted as inside.
func (t Triangle) Contains(p fixed.Vec2) bool {
	d1 := direction(t[0], t[1], p)
	d2 := direction(t[1], t[2], p)
	d3 := direction(t[2], t[0], p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// CircumcircleContains reports whether p lies strictly inside the
// circumcircle of t (spec §4.2), via the classic 3x3-plus-bias
// determinant test, with the vertices translated by p so that p sits at
// the origin. The sign convention assumes t is
// wound counter-clockwise; degenerate (collinear) triangles fall back to
// treating their centroid as the circumcenter, matching recast's
// circumCircle, which returns (centroid, false) rather than failing.
func (t Triangle) CircumcircleContains(p fixed.Vec2) bool {
	if t.SignedArea2() == fixed.Zero {
		// Degenerate (collinear) triangle: no meaningful circumcircle.
		// Treat it as a zero-radius circle at the centroid, so nothing is
		// ever reported inside it.
		return false
	}

	// The terms grow with the fourth power of the coordinates, which
	// overflows Q31.32 at super-triangle scale, so the determinant is
	// evaluated exactly on the raw integers.
	raw := func(a, b fixed.T) *big.Int { return big.NewInt(int64(a.Sub(b))) }
	mul := func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
	sub := func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }
	ax, ay := raw(t[0].X, p.X), raw(t[0].Y, p.Y)
	bx, by := raw(t[1].X, p.X), raw(t[1].Y, p.Y)
	cx, cy := raw(t[2].X, p.X), raw(t[2].Y, p.Y)

	aSq := new(big.Int).Add(mul(ax, ax), mul(ay, ay))
	bSq := new(big.Int).Add(mul(bx, bx), mul(by, by))
	cSq := new(big.Int).Add(mul(cx, cx), mul(cy, cy))

	// | ax ay aSq |
	// | bx by bSq |
	// | cx cy cSq |
	det := mul(ax, sub(mul(by, cSq), mul(bSq, cy)))
	det = sub(det, mul(ay, sub(mul(bx, cSq), mul(bSq, cx))))
	det.Add(det, mul(aSq, sub(mul(bx, cy), mul(by, cx))))

	if t.SignedArea2() > 0 {
		return det.Sign() > 0
	}
	return det.Sign() < 0
}
