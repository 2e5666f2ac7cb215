// Package lvroute is an in-memory route optimization engine: a mutable
// weighted directed graph plus the algorithms a routing service re-runs
// every time traffic changes edge weights.
//
// 🚀 What is inside?
//
//	• Graph store: nodes with planar coordinates, parallel directed edges,
//	  deterministic ascending-id enumeration
//	• Shortest paths: Dijkstra, A* (pluggable heuristic), Floyd-Warshall
//	• Connectivity: union-find with path compression and union by rank
//	• Range aggregates: generic segment tree (sum, min, max)
//	• Traffic: noise-driven weight simulation with corridor-load queries
//	• Exchange: schema-validated JSON import and export
//
// ✨ Guarantees
//
//   - Deterministic: same graph and query always give the same path,
//     including ties
//   - Explicit errors: unknown nodes, negative weights, negative cycles and
//     bad ranges are sentinel errors, never silent defaults
//   - Unreachable is not an error: an empty path with +Inf weight
//
// Packages:
//
//	core/           Graph, Node, Edge
//	dijkstra/       single-pair shortest path
//	astar/          heuristic single-pair shortest path
//	floydwarshall/  all-pairs distances and predecessors
//	unionfind/      disjoint sets over node ids
//	segtree/        segment tree over a monoid
//	traffic/        congestion simulator and edge-slot index
//	graphio/        JSON exchange format
//	cmd/routeopt/   command-line front end
//
// Core structures are not safe for concurrent mutation; the routeopt shell
// serialises commands against a single session.
package lvroute
