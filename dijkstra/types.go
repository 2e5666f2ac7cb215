// Package dijkstra defines core types and sentinel errors for Dijkstra's
// single-pair shortest-path search on a core.Graph.
//
// Errors:
//
//	– ErrNilGraph:       the graph argument was nil.
//	– ErrNegativeWeight: some edge in the graph has weight < 0.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
