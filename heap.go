package huffpack

import (
	"container/heap"
)

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	id     int32
	weight uint64
}

// weightHeap is a min-heap of tree nodes ordered by weight.  Node ids grow in
// creation order, so comparing ids breaks ties in favor of the oldest node.
type weightHeap struct {
	list []weightedNode
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
