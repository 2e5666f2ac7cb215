// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Tree is a segment tree over n leaves. It is not safe for concurrent use.
type Tree[T any] struct {
	n     int
	cells []T // 4n cells, root at 1
	m     Monoid[T]
}

// New builds a tree whose leaves are values, in order. values is copied.
// Complexity: O(n).
func New[T any](values []T, m Monoid[T]) *Tree[T] {
	t := &Tree[T]{
		n:     len(values),
		cells: make([]T, 4*len(values)),
		m:     m,
	}
	if t.n > 0 {
		t.build(values, 1, 0, t.n-1)
	}

	return t
}

// NewSum builds a float64 range-sum tree.
func NewSum(values []float64) *Tree[float64] {
	return New(values, Sum[float64]())
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int { return t.n }

func (t *Tree[T]) build(values []T, c, lo, hi int) {
	if lo == hi {
		t.cells[c] = values[lo]
		return
	}
	mid := (lo + hi) / 2
	t.build(values, 2*c, lo, mid)
	t.build(values, 2*c+1, mid+1, hi)
	t.cells[c] = t.m.Combine(t.cells[2*c], t.cells[2*c+1])
}

// Update sets leaf idx to val and recomputes its ancestors.
// Complexity: O(log n).
func (t *Tree[T]) Update(idx int, val T) error {
	if idx < 0 || idx >= t.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, t.n)
	}
	t.update(1, 0, t.n-1, idx, val)

	return nil
}

func (t *Tree[T]) update(c, lo, hi, idx int, val T) {
	if lo == hi {
		t.cells[c] = val
		return
	}
	mid := (lo + hi) / 2
	if idx <= mid {
		t.update(2*c, lo, mid, idx, val)
	} else {
		t.update(2*c+1, mid+1, hi, idx, val)
	}
	t.cells[c] = t.m.Combine(t.cells[2*c], t.cells[2*c+1])
}

// Get returns leaf idx.
func (t *Tree[T]) Get(idx int) (T, error) {
	return t.Query(idx, idx)
}

// Query folds leaves l..r inclusive, left to right.
// Complexity: O(log n).
func (t *Tree[T]) Query(l, r int) (T, error) {
	if l < 0 || r >= t.n || l > r {
		return t.m.Identity, fmt.Errorf("%w: [%d,%d] with %d leaves", ErrInvalidRange, l, r, t.n)
	}

	return t.query(1, 0, t.n-1, l, r), nil
}

func (t *Tree[T]) query(c, lo, hi, l, r int) T {
	if r < lo || hi < l {
		return t.m.Identity
	}
	if l <= lo && hi <= r {
		return t.cells[c]
	}
	mid := (lo + hi) / 2

	return t.m.Combine(t.query(2*c, lo, mid, l, r), t.query(2*c+1, mid+1, hi, l, r))
}
