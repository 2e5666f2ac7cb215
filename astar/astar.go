// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/frontier"
)

// ShortestPath returns a start→end path and its weight using A* search.
//
// With an admissible heuristic the weight equals Dijkstra's. An unreachable
// end yields (nil, core.Infinity, nil).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist in g (core.ErrNodeNotFound, wrapped).
//  3. No edge in g may have a negative weight (ErrNegativeWeight).
func ShortestPath(g *core.Graph, start, end int, opts ...Option) ([]int, float64, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, core.Infinity, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, core.Infinity, fmt.Errorf("astar: start %d: %w", start, core.ErrNodeNotFound)
	}
	target, ok := g.Node(end)
	if !ok {
		return nil, core.Infinity, fmt.Errorf("astar: end %d: %w", end, core.ErrNodeNotFound)
	}
	// 3) Pre-scan all edges for negative weights.
	for _, e := range g.AllEdges() {
		if e.Weight < 0 {
			return nil, core.Infinity, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) g = +Inf everywhere except start; start enters open with f = h(start).
	s := &search{
		g:      g,
		h:      cfg.Heuristic,
		target: target,
		start:  start,
		end:    end,
		gScore: make(map[int]float64, g.NodeCount()),
		hCache: make(map[int]float64),
		from:   make(map[int]int),
		open:   frontier.New(g.NodeCount()),
	}
	for _, id := range g.NodeIDs() {
		s.gScore[id] = core.Infinity
	}
	s.gScore[start] = 0
	s.open.Push(frontier.Item{ID: start, Priority: s.estimate(start), Cost: 0})

	// 5) Expand until end is popped or open runs dry.
	if err := s.run(); err != nil {
		return nil, core.Infinity, err
	}

	return s.path()
}

// search is the state of one A* execution.
type search struct {
	g          *core.Graph
	h          Heuristic
	target     core.Node
	start, end int
	gScore     map[int]float64 // cheapest known cost from start
	hCache     map[int]float64 // h(n, target), computed once per node
	from       map[int]int     // predecessor on the cheapest known path
	open       *frontier.Queue // priority = g + h
}

// estimate returns h(id, target), memoized.
func (s *search) estimate(id int) float64 {
	if v, ok := s.hCache[id]; ok {
		return v
	}
	n, _ := s.g.Node(id)
	v := s.h(n, s.target)
	s.hCache[id] = v

	return v
}

func (s *search) run() error {
	for s.open.Len() > 0 {
		// 1) Lowest f first; ties go to the lower id.
		cur := s.open.Pop()
		u := cur.ID

		// 2) Stale: the stored g no longer matches the node's best g.
		if cur.Cost > s.gScore[u] {
			continue
		}
		// 3) Goal test on pop, not on push.
		if u == s.end {
			return nil
		}

		// 4) Relax neighbors with f = g + h.
		edges, err := s.g.Edges(u)
		if err != nil {
			return fmt.Errorf("astar: failed to get edges of %d: %w", u, err)
		}
		gu := s.gScore[u]
		for _, e := range edges {
			tentative := gu + e.Weight
			if tentative >= s.gScore[e.To] {
				continue
			}
			s.gScore[e.To] = tentative
			s.from[e.To] = u
			s.open.Push(frontier.Item{ID: e.To, Priority: tentative + s.estimate(e.To), Cost: tentative})
		}
	}

	return nil
}

// path rebuilds start→end from the predecessor map.
func (s *search) path() ([]int, float64, error) {
	w := s.gScore[s.end]
	if math.IsInf(w, 1) {
		return nil, core.Infinity, nil
	}

	var rev []int
	for v := s.end; v != s.start; v = s.from[v] {
		rev = append(rev, v)
	}
	rev = append(rev, s.start)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, w, nil
}
