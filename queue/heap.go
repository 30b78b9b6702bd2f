// Package queue provides the min-heap and FIFO containers shared by every
// solver strategy: a binary heap keyed by a caller-supplied score (used by
// reach's A* and heuristic's best-first search), and a slice-backed FIFO
// queue (used by pathsolve's per-color BFS enumeration).
package queue

import "container/heap"

// Item is one element of a PQ: an opaque payload ordered by Score.
// Lower Score pops first, matching graph.nodeItem/tsp's f-score-ascending
// convention. Ties are broken arbitrarily, as permitted by spec.md §4.2.
type Item struct {
	Value interface{}
	Score int64
}

// items implements container/heap.Interface over a slice of Item,
// mirroring graph.nodePQ's shape exactly.
type items []Item

func (pq items) Len() int            { return len(pq) }
func (pq items) Less(i, j int) bool  { return pq[i].Score < pq[j].Score }
func (pq items) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *items) Push(x interface{}) { *pq = append(*pq, x.(Item)) }
func (pq *items) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// PQ is a binary min-heap over Item.Score. The zero value is not usable;
// construct with NewPQ. Worst-case Push/Pop is O(log n).
type PQ struct {
	h items
}

// NewPQ returns an empty, ready-to-use priority queue.
func NewPQ() *PQ {
	return &PQ{h: make(items, 0)}
}

// Push inserts value with the given score.
func (pq *PQ) Push(value interface{}, score int64) {
	heap.Push(&pq.h, Item{Value: value, Score: score})
}

// Pop removes and returns the lowest-score item. Panics if the queue is
// empty; callers must check Len first.
func (pq *PQ) Pop() (interface{}, int64) {
	it := heap.Pop(&pq.h).(Item)
	return it.Value, it.Score
}

// Len reports the number of queued items.
func (pq *PQ) Len() int {
	return pq.h.Len()
}
