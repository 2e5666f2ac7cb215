// Package floydwarshall defines core types for the all-pairs closure:
// the Result snapshot with its distance matrix and predecessor table.
//
// Complexity:
//
//	– Time:  O(V³)
//	– Space: O(V²) for distances plus O(V²) for predecessors.
package floydwarshall

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle indicates some node reaches itself with negative total weight.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")
)

// noPred marks an absent predecessor in the index table.
const noPred = -1

// Result holds the closure of one graph snapshot. It does not observe later
// mutations of the graph.
type Result struct {
	ids   []int       // index → node id, ascending
	index map[int]int // node id → index
	dist  *mat.Dense  // nil when the graph is empty
	pred  []int       // row-major n×n, predecessor index or noPred
}
