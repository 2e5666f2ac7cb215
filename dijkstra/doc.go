// Package dijkstra computes the minimum-weight path between two nodes of a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Every known node starts at +Inf (core.Infinity) except the start, at 0.
//   - A lazy-deletion min-heap keyed by (distance, id) drives relaxation: a
//     node may be queued several times and entries whose distance exceeds the
//     node's current best are discarded on pop.
//   - The search stops the moment the end node is popped as a live entry.
//   - Edges of a node are relaxed in insertion order; equal-distance entries
//     pop by ascending id. Together these pin the returned path under ties.
//
// Result contract:
//
//   - path: node IDs from start to end inclusive; [start] when start == end.
//   - weight: total path weight.
//   - Unreachable end: empty path, weight core.Infinity, nil error. This is
//     not an error condition.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        g is nil.
//   - core.ErrNodeNotFound (wrapped): start or end was never added.
//   - ErrNegativeWeight:  an O(E) pre-scan found an edge with weight < 0.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) (distance and predecessor maps plus lazy heap entries)
//
// Thread safety:
//
//   - ShortestPath only reads g. It must not run concurrently with mutations
//     of the same graph.
package dijkstra
