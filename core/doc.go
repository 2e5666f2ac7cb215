// Package core provides the in-memory Graph store consumed by every solver in
// lvroute: integer-identified nodes with planar coordinates and directed,
// float-weighted edges.
//
// The Graph G = (V,E) is deliberately plain data:
//
//   - Nodes are keyed by a caller-assigned int ID and carry X/Y coordinates
//     (used only as heuristic input for A*).
//   - Edges are directed arcs From→To with a float64 Weight.
//   - Parallel edges between the same ordered pair are retained as-is.
//   - Endpoints referenced by AddEdge are created on demand at (0,0).
//   - Nodes are never deleted.
//
// Determinism:
//
//   - NodeIDs(), Nodes() and AllEdges() iterate nodes in ascending ID order
//     (the catalog is a B-tree map, github.com/tidwall/btree).
//   - Each node's outgoing edges keep insertion order. Solvers relax edges in
//     that order, so it is a tie-break input and is reproduced exactly.
//
// Core Methods:
//
//	// Nodes
//	AddNode(id int, x, y float64)              // O(log V)
//	HasNode(id int) bool                       // O(log V)
//	Node(id int) (Node, bool)                  // O(log V)
//	NodeIDs() []int                            // O(V), ascending
//
//	// Edges
//	AddEdge(from, to int, weight float64)      // O(log V) amortized
//	UpdateEdgeWeight(from, to int, w float64) bool // O(log V + deg(from))
//	UpdateEdgeWeightAt(from, pos int, w float64) error
//	Edges(id int) ([]Edge, error)              // O(log V + deg(id)), copy
//	AllEdges() []Edge                          // O(V + E)
//
// Errors:
//
//	ErrNodeNotFound: the queried node was never added.
//	ErrEdgeNotFound: an edge position does not exist.
//
// Thread safety:
//
//	Graph is NOT safe for concurrent use. Mutations (AddNode, AddEdge,
//	UpdateEdgeWeight*) must not overlap any read on the same instance;
//	callers that share a Graph across goroutines synchronize externally.
package core
