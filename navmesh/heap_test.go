package navmesh

import (
	"testing"

	"github.com/arl/navmesh2d/fixed"
)

func f(v int) fixed.T { return fixed.FromInt(v) }

func TestHeapOrder(t *testing.T) {
	h := NewIndexedMinHeap(6)
	h.Insert(0, f(5), f(0))
	h.Insert(1, f(2), f(0))
	h.Insert(2, f(9), f(0))
	h.Insert(3, f(1), f(0))
	h.Insert(4, f(7), f(0))

	var order []int32
	for !h.Empty() {
		order = append(order, h.ExtractMin())
	}

	want := []int32{3, 1, 0, 4, 2}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestHeapUpdatePriority(t *testing.T) {
	h := NewIndexedMinHeap(3)
	h.Insert(0, f(10), f(0))
	h.Insert(1, f(5), f(0))
	h.Insert(2, f(20), f(0))

	h.UpdatePriority(2, f(1), f(0)) // now the cheapest
	if got := h.ExtractMin(); got != 2 {
		t.Fatalf("ExtractMin() = %d, want 2", got)
	}
	h.UpdatePriority(0, f(100), f(0)) // now the most expensive
	if got := h.ExtractMin(); got != 1 {
		t.Fatalf("ExtractMin() = %d, want 1", got)
	}
	if got := h.ExtractMin(); got != 0 {
		t.Fatalf("ExtractMin() = %d, want 0", got)
	}
}

func TestHeapContainsAndClear(t *testing.T) {
	h := NewIndexedMinHeap(4)
	h.Insert(0, f(1), f(0))
	h.Insert(2, f(3), f(0))

	if !h.Contains(0) || !h.Contains(2) {
		t.Fatal("expected 0 and 2 to be members")
	}
	if h.Contains(1) || h.Contains(3) {
		t.Fatal("expected 1 and 3 to be absent")
	}

	h.ExtractMin()
	if h.Contains(0) {
		t.Fatal("0 should be absent after extraction")
	}

	h.Clear()
	if h.Contains(2) || !h.Empty() {
		t.Fatal("Clear() should empty the heap and drop all membership")
	}

	// idx 0 and 2 can be reinserted immediately after Clear.
	h.Insert(0, f(1), f(0))
	if !h.Contains(0) {
		t.Fatal("expected 0 to be insertable again after Clear")
	}
}

func TestHeapFScoreTieBreakByInsertionOrder(t *testing.T) {
	h := NewIndexedMinHeap(3)
	h.Insert(0, f(5), f(0))
	h.Insert(1, f(5), f(0))
	h.Insert(2, f(5), f(0))

	var order []int32
	for !h.Empty() {
		order = append(order, h.ExtractMin())
	}
	want := []int32{0, 1, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("tie-break order = %v, want %v", order, want)
		}
	}
}
