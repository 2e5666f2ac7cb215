// Package floydwarshall computes shortest-path distances and a predecessor
// table between every ordered pair of nodes of a core.Graph.
//
// What:
//
//   - Dense all-pairs closure over the node set in ascending id order.
//   - Distances are held in a gonum *mat.Dense; +Inf means "no path".
//   - Predecessors let any u→v path be rebuilt without re-running the closure.
//
// Initialisation:
//
//   - d(u,u) = 0, pred(u,u) = u.
//   - A direct edge u→v sets d(u,v) to the minimum weight among parallel
//     edges and pred(u,v) = u. A self-loop only ever lowers d(u,u).
//   - Everything else starts at +Inf with no predecessor.
//
// Relaxation runs k → i → j in fixed order with a strict improvement rule,
// so results are deterministic. Negative edge weights are accepted; a
// negative cycle is reported as ErrNegativeCycle after the closure.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V²)
//
// Intended for small to medium graphs (hundreds to low thousands of nodes).
package floydwarshall
