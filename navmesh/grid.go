package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

// gridResolution is the fixed 32x32 uniform-grid resolution used for point
// location (spec §3).
const gridResolution = 32

// gridEpsilon pads the vertex AABB so points exactly on the mesh boundary
// still fall inside a cell (spec §4.5 step 3: "plus 1e-3 epsilon").
var gridEpsilon = fixed.FromFloat64(1e-3)

// grid is the uniform point-location index (spec §3): three parallel
// arrays (data/offsets/counts) built in two passes so each triangle is
// recorded once per overlapped cell, with no per-cell slice reallocation.
type grid struct {
	min          fixed.Vec2
	cellW, cellH fixed.T

	offsets []int32 // offsets[cell] .. offsets[cell]+counts[cell] into data
	counts  []int32
	data    []int32
}

func (g *grid) cellOf(p fixed.Vec2) (cx, cy int) {
	cx = int(p.X.Sub(g.min.X).Div(g.cellW) / fixed.One)
	cy = int(p.Y.Sub(g.min.Y).Div(g.cellH) / fixed.One)
	if cx < 0 {
		cx = 0
	} else if cx >= gridResolution {
		cx = gridResolution - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= gridResolution {
		cy = gridResolution - 1
	}
	return cx, cy
}

func (g *grid) cellIndex(cx, cy int) int32 { return int32(cy*gridResolution + cx) }

// cellRange returns [cxMin,cxMax] x [cyMin,cyMax] clamped to the grid.
func (g *grid) cellRange(min, max fixed.Vec2) (cxMin, cyMin, cxMax, cyMax int) {
	cxMin, cyMin = g.cellOf(min)
	cxMax, cyMax = g.cellOf(max)
	return
}

// buildGrid fits a 32x32 uniform grid to the vertex AABB and indexes every
// triangle in every cell its AABB overlaps (spec §4.5 step 3, §8 "Grid
// completeness"). Two-pass: count, then fill via per-cell write cursors
// derived from prefix-summed offsets.
func (m *NavMesh) buildGrid() {
	if len(m.vertices) == 0 {
		return
	}
	min, max := m.vertices[0], m.vertices[0]
	for _, v := range m.vertices[1:] {
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
	min = min.Sub(fixed.Vec2{X: gridEpsilon, Y: gridEpsilon})
	max = max.Add(fixed.Vec2{X: gridEpsilon, Y: gridEpsilon})

	g := &grid{min: min}
	g.cellW = max.X.Sub(min.X).Div(fixed.FromInt(gridResolution))
	g.cellH = max.Y.Sub(min.Y).Div(fixed.FromInt(gridResolution))
	if g.cellW == 0 {
		g.cellW = fixed.One
	}
	if g.cellH == 0 {
		g.cellH = fixed.One
	}

	ncells := gridResolution * gridResolution
	g.counts = make([]int32, ncells)
	g.offsets = make([]int32, ncells)

	triCells := make([][4]int, len(m.triangles)) // cxMin,cyMin,cxMax,cyMax
	for ti, t := range m.triangles {
		tmin, tmax := triAABB(m.vertices[t.V[0]], m.vertices[t.V[1]], m.vertices[t.V[2]])
		cxMin, cyMin, cxMax, cyMax := g.cellRange(tmin, tmax)
		triCells[ti] = [4]int{cxMin, cyMin, cxMax, cyMax}
		for cy := cyMin; cy <= cyMax; cy++ {
			for cx := cxMin; cx <= cxMax; cx++ {
				g.counts[g.cellIndex(cx, cy)]++
			}
		}
	}

	var total int32
	for i, c := range g.counts {
		g.offsets[i] = total
		total += c
	}
	g.data = make([]int32, total)
	cursor := make([]int32, ncells)
	copy(cursor, g.offsets)

	for ti, rc := range triCells {
		cxMin, cyMin, cxMax, cyMax := rc[0], rc[1], rc[2], rc[3]
		for cy := cyMin; cy <= cyMax; cy++ {
			for cx := cxMin; cx <= cxMax; cx++ {
				idx := g.cellIndex(cx, cy)
				g.data[cursor[idx]] = int32(ti)
				cursor[idx]++
			}
		}
	}

	m.grid = *g
}

func triAABB(a, b, c fixed.Vec2) (min, max fixed.Vec2) {
	min, max = a, a
	for _, v := range [2]fixed.Vec2{b, c} {
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
	return
}

// triangleCandidates returns the indices of every triangle indexed in the
// cell containing p, without checking containment itself.
func (g *grid) triangleCandidates(p fixed.Vec2) []int32 {
	cx, cy := g.cellOf(p)
	idx := g.cellIndex(cx, cy)
	off, cnt := g.offsets[idx], g.counts[idx]
	return g.data[off : off+cnt]
}

// FindTriangle returns the index of the triangle containing p, or -1 if
// none does (spec §4.7 "Initial point location uses the grid").
func (m *NavMesh) FindTriangle(p fixed.Vec2) int32 {
	for _, ti := range m.grid.triangleCandidates(p) {
		if m.GetTriangleGeometry(int(ti)).Contains(p) {
			return ti
		}
	}
	return -1
}

// findNearestTriangle implements the ring-expanding search behind
// ClampToMesh (spec §4.9): starting at p's containing cell, it expands
// ring-by-ring, stopping once the current ring's closest-possible distance
// ((ring-1) * the smaller cell dimension, a Chebyshev lower bound), squared,
// exceeds the best squared distance found so far.
func (m *NavMesh) findNearestTriangle(p fixed.Vec2) (triIdx int32, closest fixed.Vec2) {
	g := &m.grid
	cx, cy := g.cellOf(p)

	bestDistSqr := fixed.T(-1)
	bestTri := int32(-1)
	var bestPoint fixed.Vec2

	minCellDim := g.cellW
	if g.cellH < minCellDim {
		minCellDim = g.cellH
	}

	maxRing := gridResolution
	for ring := 0; ring <= maxRing; ring++ {
		if bestTri >= 0 && ring >= 1 {
			// Any point in a cell on this ring or further out is at least
			// (ring-1)*cellWidth away from the query cell (Chebyshev lower
			// bound on cell-grid distance); once that exceeds the best
			// squared distance found so far, no further ring can improve it.
			bound := fixed.FromInt(ring - 1).Mul(minCellDim)
			if bound.Mul(bound).Cmp(bestDistSqr) > 0 {
				break
			}
		}

		visited := false
		forEachCellInRing(cx, cy, ring, func(gx, gy int) {
			if gx < 0 || gx >= gridResolution || gy < 0 || gy >= gridResolution {
				return
			}
			visited = true
			idx := g.cellIndex(gx, gy)
			off, cnt := g.offsets[idx], g.counts[idx]
			for _, ti := range g.data[off : off+cnt] {
				geo := m.GetTriangleGeometry(int(ti))
				for e := 0; e < 3; e++ {
					cp, dSqr := closestPointOnTriangleEdge(p, geo, e)
					if bestTri < 0 || dSqr < bestDistSqr {
						bestDistSqr = dSqr
						bestTri = ti
						bestPoint = cp
					}
				}
			}
		})
		if !visited && ring > 0 && bestTri >= 0 {
			break
		}
	}
	return bestTri, bestPoint
}

// forEachCellInRing calls fn for every grid cell on the square ring at
// Chebyshev distance `ring` from (cx,cy) (ring==0 is just the center
// cell), including cells that fall outside the grid bounds so the caller
// can decide how to treat them.
func forEachCellInRing(cx, cy, ring int, fn func(x, y int)) {
	if ring == 0 {
		fn(cx, cy)
		return
	}
	for x := cx - ring; x <= cx+ring; x++ {
		fn(x, cy-ring)
		fn(x, cy+ring)
	}
	for y := cy - ring + 1; y <= cy+ring-1; y++ {
		fn(cx-ring, y)
		fn(cx+ring, y)
	}
}

// closestPointOnTriangleEdge returns the closest point to p on edge e of
// triangle t (e in {0,1,2}), and its squared distance.
func closestPointOnTriangleEdge(p fixed.Vec2, t geom.Triangle, e int) (fixed.Vec2, fixed.T) {
	a, b := t[e], t[(e+1)%3]
	return geom.ClosestPointOnSegment(p, a, b)
}
