// Package frontier implements the lazy-deletion min-priority queue shared by
// the Dijkstra and A* solvers.
//
// Entries are (priority, id) pairs ordered by priority ascending and, on equal
// priority, by id ascending, so pop order is fully pinned. A node may be pushed
// many times; solvers discard stale entries on pop instead of decreasing keys.
package frontier

import "container/heap"

// Item is one frontier entry.
//
// Cost is the tentative path cost (g) recorded when the item was pushed; a
// solver compares it against the node's current best to detect staleness.
// Priority equals Cost for Dijkstra and Cost+h for A*.
type Item struct {
	ID       int
	Priority float64
	Cost     float64
}

// Queue is a min-heap of Items. The zero value is ready to use.
type Queue struct {
	items itemHeap
}

// New returns a Queue with room for capacity items before growing.
func New(capacity int) *Queue {
	return &Queue{items: make(itemHeap, 0, capacity)}
}

// Push inserts it. O(log n).
func (q *Queue) Push(it Item) { heap.Push(&q.items, it) }

// Pop removes and returns the minimum item. It panics on an empty queue;
// callers guard with Len.
func (q *Queue) Pop() Item { return heap.Pop(&q.items).(Item) }

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return len(q.items) }

// itemHeap satisfies container/heap.Interface.
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

// Less orders by priority, then id, both ascending.
func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].ID < h[j].ID
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
