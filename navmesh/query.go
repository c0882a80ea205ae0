package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
	"github.com/aurelien-rainone/math32"
)

// PathResult is the outcome of FindPath (spec §6 "Query surface"). A
// failed query never returns an error — only Success=false and an empty
// Path — per spec §7 "Query failures".
type PathResult struct {
	Success      bool
	Path         []fixed.Vec2
	Length       fixed.T
	TrianglePath []int32
	Portals      [][2]fixed.Vec2
}

// IsPointOnMesh reports whether p falls inside some triangle of m.
func (m *NavMesh) IsPointOnMesh(p fixed.Vec2) bool {
	return m.FindTriangle(p) >= 0
}

// ClampToMesh returns p unchanged if it is on the mesh, otherwise the
// closest point on the mesh's boundary (spec §4.9).
func (m *NavMesh) ClampToMesh(p fixed.Vec2) fixed.Vec2 {
	if m.FindTriangle(p) >= 0 {
		return p
	}
	_, closest := m.findNearestTriangle(p)
	return closest
}

// locate resolves p to a (triangle, point) pair usable by the pathfinder:
// p itself if it is on the mesh, or its clamp if not.
func (m *NavMesh) locate(p fixed.Vec2) (int32, fixed.Vec2) {
	if tri := m.FindTriangle(p); tri >= 0 {
		return tri, p
	}
	return m.findNearestTriangle(p)
}

// PathQuery is the per-thread scratch state a caller reuses across queries
// on the same NavMesh (spec §5 "Shared-resource policy"): the NavMesh
// itself is an immutable borrow, while the open-heap, closed-set and
// g-score buffers here are generation-tagged so repeated queries never
// reallocate.
type PathQuery struct {
	mesh    *NavMesh
	scratch *astarScratch
}

// NewPathQuery allocates scratch state sized to mesh's triangle count.
func NewPathQuery(mesh *NavMesh) *PathQuery {
	return &PathQuery{mesh: mesh, scratch: newAstarScratch(int32(mesh.TriangleCount()))}
}

// FindPath runs the full query pipeline: point location (clamping either
// endpoint that falls outside the mesh), triangle A*, and the funnel
// string-pull (spec §4.9).
func (q *PathQuery) FindPath(start, end fixed.Vec2) PathResult {
	m := q.mesh
	if m.TriangleCount() == 0 {
		return PathResult{}
	}

	startTri, start := m.locate(start)
	endTri, end := m.locate(end)

	corridor, portalEdges, ok := m.findCorridor(q.scratch, startTri, endTri, start, end)
	if !ok {
		return PathResult{Success: false}
	}

	path := funnel(start, end, portalEdges)

	var length fixed.T
	for i := 1; i < len(path); i++ {
		length = length.Add(path[i-1].Dist(path[i]))
	}

	portals := make([][2]fixed.Vec2, len(portalEdges))
	copy(portals, portalEdges)

	return PathResult{
		Success:      true,
		Path:         path,
		Length:       length,
		TrianglePath: corridor,
		Portals:      portals,
	}
}

// Raycast walks from origin toward origin+dir*maxDist triangle by
// triangle, stepping across whichever edge the segment exits through,
// until it reaches the target, exits the mesh, or spends its iteration
// budget (spec §4.9). It returns the furthest point reached along the
// segment.
func (m *NavMesh) Raycast(origin, dir fixed.Vec2, maxDist fixed.T) fixed.Vec2 {
	target := origin.Add(dir.Scale(maxDist))
	cur := m.FindTriangle(origin)
	if cur < 0 {
		return origin
	}

	curOrigin := origin
	maxIter := int(math32.MinInt32(int32(2*len(m.triangles)), hardIterationCap))
	for i := 0; i < maxIter; i++ {
		geo := m.GetTriangleGeometry(int(cur))
		if geo.Contains(target) {
			return target
		}

		advanced := false
		for e := 0; e < 3; e++ {
			a, b := geo[e], geo[(e+1)%3]
			if !geom.SegmentsIntersect(curOrigin, target, a, b) {
				continue
			}
			ip := segmentIntersectionPoint(curOrigin, target, a, b)
			nb := m.triangles[cur].N[e]
			if nb == noNeighbor {
				return ip
			}
			cur = nb
			curOrigin = ip
			advanced = true
			break
		}
		if !advanced {
			return target
		}
	}
	return curOrigin
}

// segmentIntersectionPoint returns the point where line (p1,p2) crosses
// line (p3,p4), assumed (by the caller having already confirmed a strict
// crossing via geom.SegmentsIntersect) to be a proper, non-parallel
// intersection. The point is parametrised along (p3,p4), so it lies on
// that edge up to the rounding of one Mul.
func segmentIntersectionPoint(p1, p2, p3, p4 fixed.Vec2) fixed.Vec2 {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return p1
	}
	u := p3.Sub(p1).Cross(d1).Div(denom)
	return p3.Add(d2.Scale(u))
}
