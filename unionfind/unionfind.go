// SPDX-License-Identifier: MIT

package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnregistered indicates an id that was never passed to MakeSet.
var ErrUnregistered = errors.New("unionfind: id not registered")

// DisjointSet is a union-find forest keyed by int ids.
type DisjointSet struct {
	parent map[int]int
	rank   map[int]int
	sets   int
}

// New returns a DisjointSet with a singleton for every id.
func New(ids ...int) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		ds.MakeSet(id)
	}

	return ds
}

// MakeSet registers v as a singleton with rank 0.
// It is a no-op when v is already registered, so existing unions survive.
func (ds *DisjointSet) MakeSet(v int) {
	if _, ok := ds.parent[v]; ok {
		return
	}
	ds.parent[v] = v
	ds.rank[v] = 0
	ds.sets++
}

// Has reports whether v is registered.
func (ds *DisjointSet) Has(v int) bool {
	_, ok := ds.parent[v]

	return ok
}

// Len returns the number of registered ids.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Sets returns the number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.sets }

// Find returns the representative of v's set and compresses the access path.
// Complexity: amortized near O(1).
func (ds *DisjointSet) Find(v int) (int, error) {
	if _, ok := ds.parent[v]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnregistered, v)
	}

	return ds.root(v), nil
}

// root walks to the root, then rewrites every visited parent to it.
func (ds *DisjointSet) root(v int) int {
	r := v
	for ds.parent[r] != r {
		r = ds.parent[r]
	}
	for v != r {
		next := ds.parent[v]
		ds.parent[v] = r
		v = next
	}

	return r
}

// Union merges the sets of a and b by rank. Same-set calls are no-ops.
func (ds *DisjointSet) Union(a, b int) error {
	ra, err := ds.Find(a)
	if err != nil {
		return err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}

	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--

	return nil
}

// Connected reports whether a and b share a representative.
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}
