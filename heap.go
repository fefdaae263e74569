package huffcode

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// PriorityQueue is a min-priority queue of tree nodes keyed by weight.
// BuildTree depends only on this interface, never on a queue's layout.
type PriorityQueue interface {
	// Len returns the number of queued nodes.
	Len() int

	// Build replaces the contents of the queue with nodes and restores
	// queue order in bulk.
	Build(nodes []*Node) error

	// Insert adds a node to the queue.
	Insert(node *Node) error

	// ExtractMin removes and returns the node with the smallest weight.
	ExtractMin() (*Node, error)
}

// MinHeap is an array-backed binary min-heap of fixed capacity.  For every
// non-root element, its weight is >= the weight of its parent; equal weights
// are ordered by the heap's TieBreak.
type MinHeap struct {
	array []*Node
	size  int
	tie   TieBreak
}

// NewMinHeap constructs an empty MinHeap able to hold capacity nodes.
func NewMinHeap(capacity int, tie TieBreak) *MinHeap {
	assert.Assertf(capacity > 0, "capacity %d <= 0", capacity)
	return &MinHeap{
		array: make([]*Node, capacity),
		tie:   tie,
	}
}

// Len returns the number of nodes in the heap.
func (h *MinHeap) Len() int {
	return h.size
}

// Cap returns the maximum number of nodes the heap can hold.
func (h *MinHeap) Cap() int {
	return len(h.array)
}

// Build replaces the contents of the heap with nodes and heapifies them in
// O(n) by sifting down from the last internal position to the root.  It
// fails with ErrQueueFull if there are more nodes than capacity.
func (h *MinHeap) Build(nodes []*Node) error {
	if len(nodes) > len(h.array) {
		return errors.Wrapf(ErrQueueFull, "building heap of %d nodes with capacity %d", len(nodes), len(h.array))
	}
	h.clear()
	h.size = copy(h.array, nodes)
	for i := h.size/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return nil
}

// Insert adds a node in O(log n) by sifting it up.  It fails with
// ErrQueueFull if the heap is already at capacity.
func (h *MinHeap) Insert(node *Node) error {
	if h.size == len(h.array) {
		return errors.Wrapf(ErrQueueFull, "inserting %v with capacity %d", node, len(h.array))
	}
	i := h.size
	h.size++
	for i > 0 {
		parent := (i - 1) / 2
		if !h.tie.less(node, h.array[parent]) {
			break
		}
		h.array[i] = h.array[parent]
		i = parent
	}
	h.array[i] = node
	return nil
}

// ExtractMin removes and returns the node with the smallest weight in
// O(log n).  It fails with ErrQueueEmpty if the heap is empty.
func (h *MinHeap) ExtractMin() (*Node, error) {
	if h.size == 0 {
		return nil, ErrQueueEmpty
	}
	min := h.array[0]
	h.size--
	h.array[0] = h.array[h.size]
	h.array[h.size] = nil
	if h.size > 0 {
		h.siftDown(0)
	}
	return min, nil
}

func (h *MinHeap) siftDown(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < h.size && h.tie.less(h.array[left], h.array[smallest]) {
			smallest = left
		}
		if right < h.size && h.tie.less(h.array[right], h.array[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.array[i], h.array[smallest] = h.array[smallest], h.array[i]
		i = smallest
	}
}

func (h *MinHeap) clear() {
	for i := 0; i < h.size; i++ {
		h.array[i] = nil
	}
	h.size = 0
}

var _ PriorityQueue = (*MinHeap)(nil)
