package navmesh

import "github.com/arl/navmesh2d/fixed"

// portal is one left/right gate of the corridor the funnel walks through.
type portal struct {
	left, right fixed.Vec2
}

// triArea2 returns twice the signed area of triangle (a,b,c): positive when
// c is to the left of ab, negative when to the right, zero when collinear.
// Grounded on the teacher's TriArea2D (detour/common.go), reimplemented
// over Fixed64 instead of float32.
func triArea2(a, b, c fixed.Vec2) fixed.T {
	return b.Sub(a).Cross(c.Sub(a))
}

// buildPortals turns the raw (left,right) edge pairs A* produced into a
// funnel-ready portal list: a zero-width portal at start, one per shared
// edge (re-oriented so "left"/"right" match the direction of travel), and
// a zero-width portal at end (spec §4.8 "Preprocessing").
func buildPortals(start, end fixed.Vec2, edges [][2]fixed.Vec2) []portal {
	portals := make([]portal, 0, len(edges)+2)
	portals = append(portals, portal{start, start})

	prevCenter := start
	for _, e := range edges {
		left, right := e[0], e[1]
		stepDir := left.Midpoint(right).Sub(prevCenter)
		portalVec := right.Sub(left)
		if stepDir.Cross(portalVec) < 0 {
			left, right = right, left
		}
		portals = append(portals, portal{left, right})
		prevCenter = left.Midpoint(right)
	}

	portals = append(portals, portal{end, end})
	return portals
}

// funnel runs the Simple Stupid Funnel algorithm over a sequence of
// portals from start to end (spec §4.8), producing the shortest polyline
// that stays inside the corridor those portals describe.
//
// Grounded on detour/query.go's findStraightPath loop, stripped of its
// polygon-reference/off-mesh-connection bookkeeping (this engine has no
// polygon graph beyond the triangle corridor itself) and ported from
// float32 d3.Vec3 to Fixed64 Vec2.
func funnel(start, end fixed.Vec2, edges [][2]fixed.Vec2) []fixed.Vec2 {
	portals := buildPortals(start, end, edges)

	path := []fixed.Vec2{start}
	apex, left, right := start, start, start
	apexIdx, leftIdx, rightIdx := 0, 0, 0

	for i := 1; i < len(portals); i++ {
		pl, pr := portals[i].left, portals[i].right

		// Right side.
		if triArea2(apex, right, pr) <= 0 {
			if apex.Equal(right) || triArea2(apex, left, pr) > 0 {
				right = pr
				rightIdx = i
			} else {
				path = append(path, left)
				apex, apexIdx = left, leftIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}

		// Left side.
		if triArea2(apex, left, pl) >= 0 {
			if apex.Equal(left) || triArea2(apex, right, pl) < 0 {
				left = pl
				leftIdx = i
			} else {
				path = append(path, right)
				apex, apexIdx = right, rightIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	if len(path) == 0 || !path[len(path)-1].Equal(end) {
		path = append(path, end)
	}
	return path
}
