// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, constructor.

package core

import (
	"errors"
	"math"

	"github.com/tidwall/btree"
)

// Sentinel errors for graph store operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that was never added.
	// It is distinct from a node that exists but has no outgoing edges.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge position.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Infinity is the sentinel distance for "unreachable" used by every solver.
var Infinity = math.Inf(1)

// Node is a vertex of the graph with planar coordinates.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID int

	// X, Y are coordinates; only A* heuristics read them.
	X, Y float64
}

// Edge is a directed, weighted arc owned by the adjacency of its source node.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// entry is one catalog slot: node attributes plus its outgoing edges.
type entry struct {
	node Node
	out  []Edge // insertion order
}

// Graph is a mutable directed weighted multigraph keyed by int node IDs.
//
// nodes is ordered ascending by ID so every enumeration is deterministic.
// edgeCount mirrors the total length of all adjacency slices.
type Graph struct {
	nodes     *btree.Map[int, *entry]
	edgeCount int
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{nodes: btree.NewMap[int, *entry](0)}
}
