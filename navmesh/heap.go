package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/aurelien-rainone/assertgo"
)

// heapItem is one entry of the open set: a triangle index and its f-score
// (g+h), plus the monotonic sequence number it was inserted or last
// reprioritized with, used only to break f-score ties by insertion order
// (spec §4.6: "any consistent tie-break gives correct A*").
type heapItem struct {
	idx int32
	f   fixed.T
	seq int64
}

// IndexedMinHeap is the fixed-capacity binary min-heap behind A*'s open set
// (spec §4.6): capacity equals the triangle count, entries are addressed by
// triangle index rather than by heap slot, and membership/clear are O(1)
// via a generation counter rather than a full re-init.
//
// Grounded on detour's nodeQueue (bubbleUp/trickleDown array heap), adapted
// from a pointer-indexed heap of *Node to a value heap indexed by triangle
// index, since this engine's "node" data already lives in the NavMesh and
// the scratch state only needs to track scores.
type IndexedMinHeap struct {
	items []heapItem // items[0:size] is the heap array
	size  int32

	position   []int32 // position[idx] = slot in items, valid iff generation[idx]==curGen
	generation []int32
	curGen     int32

	nextSeq int64
}

// NewIndexedMinHeap allocates a heap with capacity equal to n (the mesh's
// triangle count).
func NewIndexedMinHeap(n int32) *IndexedMinHeap {
	assert.True(n >= 0, "IndexedMinHeap capacity must be >= 0")
	h := &IndexedMinHeap{
		items:      make([]heapItem, n),
		position:   make([]int32, n),
		generation: make([]int32, n),
		curGen:     1,
	}
	return h
}

// Clear empties the heap in O(1) by advancing the generation counter; every
// previously-inserted index is implicitly absent until reinserted. A
// generation counter overflow (practically unreachable, but the spec calls
// for a defined fallback) triggers a one-time full reset instead of wrapping
// into collision with generation 0.
func (h *IndexedMinHeap) Clear() {
	h.size = 0
	h.curGen++
	if h.curGen == 0 {
		for i := range h.generation {
			h.generation[i] = 0
		}
		h.curGen = 1
	}
}

// Contains reports whether idx currently has an entry in the heap, in O(1)
// via the generation tag (spec §4.6).
func (h *IndexedMinHeap) Contains(idx int32) bool {
	return h.generation[idx] == h.curGen
}

// Empty reports whether the heap holds no entries.
func (h *IndexedMinHeap) Empty() bool { return h.size == 0 }

// Insert adds idx with f-score g+h. idx must not already be a member.
func (h *IndexedMinHeap) Insert(idx int32, g, hcost fixed.T) {
	assert.True(!h.Contains(idx), "IndexedMinHeap.Insert: idx already present")
	slot := h.size
	h.size++
	h.nextSeq++
	it := heapItem{idx: idx, f: g.Add(hcost), seq: h.nextSeq}
	h.items[slot] = it
	h.generation[idx] = h.curGen
	h.position[idx] = slot
	h.siftUp(slot)
}

// UpdatePriority changes idx's f-score to g+h and restores heap order. idx
// must already be a member.
func (h *IndexedMinHeap) UpdatePriority(idx int32, g, hcost fixed.T) {
	assert.True(h.Contains(idx), "IndexedMinHeap.UpdatePriority: idx not present")
	slot := h.position[idx]
	newF := g.Add(hcost)
	improved := newF.Cmp(h.items[slot].f) < 0
	h.nextSeq++
	h.items[slot].f = newF
	h.items[slot].seq = h.nextSeq
	if improved {
		h.siftUp(slot)
	} else {
		h.siftDown(slot)
	}
}

// ExtractMin removes and returns the triangle index with the lowest
// f-score. Calling ExtractMin on an empty heap is a contract violation
// (spec §4.6: "undefined behavior the caller must avoid"), trapped in
// debug builds via assert.
func (h *IndexedMinHeap) ExtractMin() int32 {
	assert.True(h.size > 0, "IndexedMinHeap.ExtractMin: heap is empty")
	top := h.items[0]
	h.size--
	if h.size > 0 {
		h.items[0] = h.items[h.size]
		h.position[h.items[0].idx] = 0
	}
	h.generation[top.idx] = h.curGen - 1 // mark absent without a second counter pass
	if h.size > 0 {
		h.siftDown(0)
	}
	return top.idx
}

func (h *IndexedMinHeap) less(a, b heapItem) bool {
	if c := a.f.Cmp(b.f); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (h *IndexedMinHeap) swap(i, j int32) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.position[h.items[i].idx] = i
	h.position[h.items[j].idx] = j
}

func (h *IndexedMinHeap) siftUp(slot int32) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !h.less(h.items[slot], h.items[parent]) {
			break
		}
		h.swap(slot, parent)
		slot = parent
	}
}

func (h *IndexedMinHeap) siftDown(slot int32) {
	for {
		left := slot*2 + 1
		right := left + 1
		smallest := slot
		if left < h.size && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < h.size && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == slot {
			break
		}
		h.swap(slot, smallest)
		slot = smallest
	}
}
