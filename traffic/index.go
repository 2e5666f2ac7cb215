// SPDX-License-Identifier: MIT

package traffic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/segtree"
)

// ErrStaleIndex indicates the graph gained edges after the Index was built.
var ErrStaleIndex = errors.New("traffic: index is stale, graph topology changed")

// slot locates one edge inside the graph's adjacency.
type slot struct {
	from int
	pos  int // position within the source's outgoing edges
	base float64
}

// Index maps every edge of a graph to a dense slot and tracks current weights.
type Index struct {
	g      *core.Graph
	slots  []slot
	offset map[int]int // source id → first slot
	load   *segtree.Tree[float64]
}

// NewIndex snapshots the edges of g. Current weights become base weights.
// Complexity: O(V + E).
func NewIndex(g *core.Graph) *Index {
	edges := g.AllEdges()
	idx := &Index{
		g:      g,
		slots:  make([]slot, len(edges)),
		offset: make(map[int]int),
	}

	weights := make([]float64, len(edges))
	pos := 0
	for i, e := range edges {
		if i == 0 || edges[i-1].From != e.From {
			idx.offset[e.From] = i
			pos = 0
		}
		idx.slots[i] = slot{from: e.From, pos: pos, base: e.Weight}
		weights[i] = e.Weight
		pos++
	}
	idx.load = segtree.NewSum(weights)

	return idx
}

// Len returns the number of slots.
func (x *Index) Len() int { return len(x.slots) }

// Load returns the summed current weight of slots l..r inclusive.
func (x *Index) Load(l, r int) (float64, error) {
	if err := x.check(); err != nil {
		return 0, err
	}
	v, err := x.load.Query(l, r)
	if err != nil {
		return 0, fmt.Errorf("traffic: load [%d,%d]: %w", l, r, err)
	}

	return v, nil
}

// Sync refreshes the slot of the first from→to edge after a direct
// core.Graph.UpdateEdgeWeight call.
func (x *Index) Sync(from, to int) error {
	if err := x.check(); err != nil {
		return err
	}
	edges, err := x.g.Edges(from)
	if err != nil {
		return fmt.Errorf("traffic: sync %d→%d: %w", from, to, err)
	}
	for p, e := range edges {
		if e.To == to {
			return x.load.Update(x.offset[from]+p, e.Weight)
		}
	}

	return fmt.Errorf("traffic: sync %d→%d: %w", from, to, core.ErrEdgeNotFound)
}

// set writes w to slot s in both the graph and the tree.
func (x *Index) set(s int, w float64) error {
	sl := x.slots[s]
	if err := x.g.UpdateEdgeWeightAt(sl.from, sl.pos, w); err != nil {
		return err
	}

	return x.load.Update(s, w)
}

func (x *Index) check() error {
	if x.g.EdgeCount() != len(x.slots) {
		return fmt.Errorf("%w: %d edges indexed, graph has %d", ErrStaleIndex, len(x.slots), x.g.EdgeCount())
	}

	return nil
}
