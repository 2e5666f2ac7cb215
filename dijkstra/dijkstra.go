// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/frontier"
)

// ShortestPath returns the minimum-weight path from start to end and its weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist in g (core.ErrNodeNotFound, wrapped).
//  3. No edge in g may have a negative weight (ErrNegativeWeight).
//
// An unreachable end yields (nil, core.Infinity, nil).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end int) ([]int, float64, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, core.Infinity, ErrNilGraph
	}
	// 2) Validate both endpoints exist.
	if !g.HasNode(start) {
		return nil, core.Infinity, fmt.Errorf("dijkstra: start %d: %w", start, core.ErrNodeNotFound)
	}
	if !g.HasNode(end) {
		return nil, core.Infinity, fmt.Errorf("dijkstra: end %d: %w", end, core.ErrNodeNotFound)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.AllEdges() {
		if e.Weight < 0 {
			return nil, core.Infinity, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare dist, prev and the frontier, then run the main loop.
	r := newRunner(g, start, end)
	if err := r.process(); err != nil {
		return nil, core.Infinity, err
	}

	// 5) Walk predecessors back from end.
	return r.path()
}

// runner holds the mutable state for a single execution.
type runner struct {
	g          *core.Graph
	start, end int
	dist       map[int]float64 // best known distance from start
	prev       map[int]int     // predecessor on the best known path
	pq         *frontier.Queue
}

// newRunner initializes dist[v] = +Inf for every node, dist[start] = 0,
// and seeds the frontier with the start node.
func newRunner(g *core.Graph, start, end int) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:     g,
		start: start,
		end:   end,
		dist:  make(map[int]float64, len(ids)),
		prev:  make(map[int]int, len(ids)),
		pq:    frontier.New(len(ids)),
	}
	// 1) dist[v] = +Inf for all v, in ascending id order.
	for _, id := range ids {
		r.dist[id] = core.Infinity
	}
	// 2) Distance to the source is zero.
	r.dist[start] = 0
	// 3) Seed the frontier with the source.
	r.pq.Push(frontier.Item{ID: start, Priority: 0, Cost: 0})

	return r
}

// process pops the closest live entry until the frontier is empty or the end
// node is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry; ties go to the lower id.
		item := r.pq.Pop()
		u := item.ID

		// 2) Stale entry: a shorter path to u was already recorded.
		if item.Cost > r.dist[u] {
			continue
		}
		// 3) The end is settled; its distance is final.
		if u == r.end {
			return nil
		}
		// 4) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves every neighbor reachable through u's outgoing edges.
// Uses strict "<" so equal-cost alternatives keep the first predecessor found.
func (r *runner) relax(u int) error {
	// 1) Outgoing edges in insertion order.
	edges, err := r.g.Edges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", u, err)
	}

	// 2) Strictly better candidates only; record predecessor and push.
	du := r.dist[u]
	for _, e := range edges {
		nd := du + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		r.pq.Push(frontier.Item{ID: e.To, Priority: nd, Cost: nd})
	}

	return nil
}

// path rebuilds start→end from the predecessor map.
func (r *runner) path() ([]int, float64, error) {
	w := r.dist[r.end]
	if math.IsInf(w, 1) {
		return nil, core.Infinity, nil
	}

	var rev []int
	for v := r.end; v != r.start; v = r.prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, r.start)

	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out, w, nil
}
