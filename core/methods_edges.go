// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Parallel edges are never reconciled; each AddEdge appends.
//   - Weight updates mutate in place and never reorder adjacency.
package core

import "fmt"

// AddEdge appends a directed edge from→to with the given weight.
//
// Implementation:
//   - Stage 1: Auto-create both endpoints at (0,0) if they are missing.
//   - Stage 2: Append to the source's adjacency (insertion order preserved).
//
// Behavior highlights:
//   - Always succeeds; duplicates and self-loops are retained.
//   - Weights are stored unchecked; solvers document their own preconditions.
//
// Complexity:
//   - Time O(log V) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) {
	src := g.ensureNode(from)
	g.ensureNode(to)
	src.out = append(src.out, Edge{From: from, To: to, Weight: weight})
	g.edgeCount++
}

// UpdateEdgeWeight overwrites the weight of the first edge from→to in insertion order.
//
// Returns false when from is unknown or has no edge to `to`; all other
// edges, including later parallel from→to edges, are left unchanged.
// Complexity: O(log V + deg(from)).
func (g *Graph) UpdateEdgeWeight(from, to int, newWeight float64) bool {
	e, ok := g.nodes.Get(from)
	if !ok {
		return false
	}
	for i := range e.out {
		if e.out[i].To == to {
			e.out[i].Weight = newWeight
			return true
		}
	}

	return false
}

// UpdateEdgeWeightAt overwrites the weight of the pos-th outgoing edge of from
// (0-based, insertion order). It addresses one specific parallel edge, which
// UpdateEdgeWeight cannot.
//
// Errors:
//   - ErrNodeNotFound if from was never added.
//   - ErrEdgeNotFound if pos is outside [0, deg(from)).
func (g *Graph) UpdateEdgeWeightAt(from, pos int, newWeight float64) error {
	e, ok := g.nodes.Get(from)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if pos < 0 || pos >= len(e.out) {
		return fmt.Errorf("%w: node %d position %d (degree %d)", ErrEdgeNotFound, from, pos, len(e.out))
	}
	e.out[pos].Weight = newWeight

	return nil
}

// Edges returns a copy of id's outgoing edges in insertion order.
//
// A node with no outgoing edges yields an empty, non-nil slice; a node that
// was never added yields ErrNodeNotFound.
// Complexity: O(log V + deg(id)).
func (g *Graph) Edges(id int) ([]Edge, error) {
	e, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(e.out))
	copy(out, e.out)

	return out, nil
}

// AllEdges returns every edge, grouped by source in ascending ID order and in
// insertion order within a source.
// Complexity: O(V + E).
func (g *Graph) AllEdges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	g.nodes.Scan(func(_ int, e *entry) bool {
		out = append(out, e.out...)
		return true
	})

	return out
}

// EdgeCount returns |E|, counting parallel edges individually.
func (g *Graph) EdgeCount() int { return g.edgeCount }
