// Package unionfind maintains a partition of node ids into disjoint sets.
//
// Find uses full path compression (walk to the root, then point every
// visited id at it) and is iterative, so long chains never grow the stack.
// Union attaches the lower-rank root under the higher-rank root; on equal
// ranks the second argument's root goes under the first and that root's
// rank grows by one.
//
// Ids must be registered with MakeSet (or New) before Find or Union; an
// unregistered id is reported as ErrUnregistered rather than silently
// becoming its own set.
//
// A DisjointSet is not safe for concurrent use.
package unionfind
