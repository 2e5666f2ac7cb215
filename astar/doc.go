// Package astar finds the minimum-weight path between two nodes of a
// core.Graph, guided by a heuristic estimate of the remaining cost.
//
// Overview:
//
//   - Same relaxation structure and result contract as package dijkstra,
//     except the frontier priority of a node is g(node) + h(node, end).
//   - Lazy deletion: an entry whose recorded cost exceeds the node's current
//     best g is discarded on pop. There is no closed set, so a node improved
//     after being expanded is simply expanded again.
//   - Search stops when the end node is popped as a live entry.
//
// Heuristics:
//
//   - Euclidean (default): straight-line distance between node coordinates.
//     Admissible only when edge weights are at least the Euclidean length of
//     the edge; otherwise a suboptimal path may be returned. This is a
//     documented limitation, not a checked error.
//   - Zero: always 0. A* then pops in exactly Dijkstra's order and returns
//     the same path and weight.
//   - Any func(n, target core.Node) float64 via WithHeuristic.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        g is nil.
//   - core.ErrNodeNotFound (wrapped): start or end was never added.
//   - ErrNegativeWeight:  an edge with weight < 0 exists.
//
// Complexity:
//
//   - Time:  O((V + E) log E) worst case, usually far less on embedded graphs.
//   - Space: O(V + E)
package astar
