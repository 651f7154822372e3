package search

import "github.com/katalvlaran/mazepath/grid"

// pqItem is one frontier entry: a cell, its priority, and an insertion
// sequence number breaking priority ties FIFO so expansion order is fully
// deterministic. Accumulated costs live in the callers' dist/gScore maps.
type pqItem struct {
	point grid.Point
	f     float64
	seq   int
	index int
}

// pointQueue implements heap.Interface as a min-heap over f with FIFO
// tie-breaking, the lazy decrease-key style frontier shared by Dijkstra,
// A*, Greedy Best-First, and Theta*.
type pointQueue struct {
	items []*pqItem
	seq   int
}

// Len returns the number of frontier entries. Complexity: O(1).
func (q *pointQueue) Len() int { return len(q.items) }

// Less orders by ascending f, then by insertion sequence. Complexity: O(1).
func (q *pointQueue) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}

	return q.items[i].seq < q.items[j].seq
}

// Swap exchanges two entries and fixes their indices. Complexity: O(1).
func (q *pointQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push appends a new entry, stamping its sequence number.
// Called by heap.Push. Complexity: O(log N) amortized.
func (q *pointQueue) Push(x any) {
	item := x.(*pqItem)
	item.seq = q.seq
	q.seq++
	item.index = len(q.items)
	q.items = append(q.items, item)
}

// Pop removes and returns the minimum entry.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (q *pointQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}
