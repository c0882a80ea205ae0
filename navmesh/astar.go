package navmesh

import "github.com/arl/navmesh2d/fixed"

// closedSet is a generation-tagged membership bitmap (spec §4.6/§5): O(1)
// clear via an incrementing counter rather than a re-zeroed slice.
type closedSet struct {
	gen    []int32
	curGen int32
}

func newClosedSet(n int32) *closedSet {
	return &closedSet{gen: make([]int32, n), curGen: 1}
}

func (c *closedSet) clear() {
	c.curGen++
	if c.curGen == 0 {
		for i := range c.gen {
			c.gen[i] = 0
		}
		c.curGen = 1
	}
}

func (c *closedSet) has(idx int32) bool { return c.gen[idx] == c.curGen }
func (c *closedSet) mark(idx int32)     { c.gen[idx] = c.curGen }

// astarScratch holds the per-thread reusable state A* needs: the open-set
// heap, the closed-set bitmap, and the came-from / g-score / entry-edge
// arrays, all generation-tagged so Reset is O(1) (spec §5 "Shared-resource
// policy"). One astarScratch is owned per query-issuing goroutine, sized to
// the mesh's triangle count, and reused across queries.
type astarScratch struct {
	heap     *IndexedMinHeap
	closed   *closedSet
	visited  *closedSet // reuses the same generation-tag trick to mark "g-score is valid"
	gScore   []fixed.T
	cameFrom []int32
	entry    []int32 // entry edge on this triangle that the corridor arrived through
}

// newAstarScratch allocates scratch state sized to n triangles.
func newAstarScratch(n int32) *astarScratch {
	return &astarScratch{
		heap:     NewIndexedMinHeap(n),
		closed:   newClosedSet(n),
		visited:  newClosedSet(n),
		gScore:   make([]fixed.T, n),
		cameFrom: make([]int32, n),
		entry:    make([]int32, n),
	}
}

func (s *astarScratch) reset() {
	s.heap.Clear()
	s.closed.clear()
	s.visited.clear()
}

// pairIndex maps an unordered pair of edge indices {0,1,2} to its slot in
// edgePairs / edgePairDistances.
func pairIndex(a, b int) int {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == 0 && b == 1:
		return 0
	case a == 0 && b == 2:
		return 1
	default: // 1,2
		return 2
	}
}

// crossCost returns the cached cost of crossing triangle tri from entry
// edge entryEdge to exit edge exitEdge (spec §4.5 step 5).
func (m *NavMesh) crossCost(tri int32, entryEdge, exitEdge int) fixed.T {
	p := pairIndex(entryEdge, exitEdge)
	return m.edgePairDistances[3*tri+int32(p)]
}

// findCorridor runs triangle A* from startTri to endTri (spec §4.7),
// returning the ordered triangle corridor and the shared-edge portals
// between consecutive triangles, in the triangulator's stored vertex
// order (not yet funnel-orientation-normalized).
//
// Per the resolved §9 open question (see DESIGN.md), the first hop costs
// the distance from the literal start point to the exit edge's midpoint,
// and every later hop the cached midpoint-to-midpoint crossing cost. The
// heuristic is the straight-line distance from the crossed edge's midpoint
// to the literal end point, forced to 0 for the end triangle itself; the
// start node is seeded with the start-to-end distance. No cost is added
// for the final hop from the end triangle's entry edge to the end point:
// that stretch is covered only by the funnel.
func (m *NavMesh) findCorridor(s *astarScratch, startTri, endTri int32, start, end fixed.Vec2) ([]int32, [][2]fixed.Vec2, bool) {
	if startTri == endTri {
		return []int32{startTri}, nil, true
	}

	s.reset()
	s.gScore[startTri] = 0
	s.cameFrom[startTri] = -1
	s.entry[startTri] = -1
	s.visited.mark(startTri)
	s.heap.Insert(startTri, 0, start.Dist(end))

	for !s.heap.Empty() {
		cur := s.heap.ExtractMin()
		if cur == endTri {
			return m.reconstructCorridor(s, startTri, endTri)
		}
		s.closed.mark(cur)

		t := m.triangles[cur]
		entryEdge := int(s.entry[cur])
		for e := 0; e < 3; e++ {
			nb := t.N[e]
			if nb == noNeighbor || s.closed.has(nb) {
				continue
			}

			var crossCost fixed.T
			if entryEdge < 0 {
				crossCost = start.Dist(m.edgeMidpoints[3*cur+int32(e)])
			} else {
				crossCost = m.crossCost(cur, entryEdge, e)
			}
			tentativeG := s.gScore[cur].Add(crossCost)

			if s.visited.has(nb) && tentativeG.Cmp(s.gScore[nb]) >= 0 {
				continue
			}

			var hcost fixed.T
			if nb == endTri {
				hcost = 0
			} else {
				hcost = m.edgeMidpoints[3*cur+int32(e)].Dist(end)
			}

			s.gScore[nb] = tentativeG
			s.cameFrom[nb] = cur
			s.entry[nb] = m.neighborEntryEdge[3*cur+int32(e)]

			if s.heap.Contains(nb) {
				s.heap.UpdatePriority(nb, tentativeG, hcost)
			} else {
				s.heap.Insert(nb, tentativeG, hcost)
			}
			s.visited.mark(nb)
		}
	}

	return nil, nil, false
}

// reconstructCorridor walks came_from backward from endTri to startTri,
// then derives the shared-edge portal for every consecutive pair by
// re-scanning adjacency (spec §4.7 "Outputs").
func (m *NavMesh) reconstructCorridor(s *astarScratch, startTri, endTri int32) ([]int32, [][2]fixed.Vec2, bool) {
	var corridor []int32
	for cur := endTri; cur != -1; cur = s.cameFrom[cur] {
		corridor = append(corridor, cur)
	}
	for i, j := 0, len(corridor)-1; i < j; i, j = i+1, j-1 {
		corridor[i], corridor[j] = corridor[j], corridor[i]
	}

	portals := make([][2]fixed.Vec2, 0, len(corridor)-1)
	for i := 0; i < len(corridor)-1; i++ {
		a, b := corridor[i], corridor[i+1]
		ta := m.triangles[a]
		for e := 0; e < 3; e++ {
			if ta.N[e] == b {
				portals = append(portals, [2]fixed.Vec2{m.vertices[ta.V[e]], m.vertices[ta.V[(e+1)%3]]})
				break
			}
		}
	}
	return corridor, portals, true
}
