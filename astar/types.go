// Package astar defines core types, heuristics and configuration options
// for A* single-pair shortest-path search on a core.Graph.
//
// Options:
//
//	– Heuristic: estimate of the remaining cost to the target (default Euclidean).
//
// An admissible heuristic (never above the true remaining cost) yields the
// same weight as Dijkstra; Zero reduces A* to Dijkstra exactly.
package astar

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNilHeuristic indicates WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from n to target.
// It must never return a negative value.
type Heuristic func(n, target core.Node) float64

// Euclidean is the straight-line distance between the coordinates of n and target.
func Euclidean(n, target core.Node) float64 {
	return floats.Distance([]float64{n.X, n.Y}, []float64{target.X, target.Y}, 2)
}

// Zero always estimates 0, reducing A* to Dijkstra.
func Zero(core.Node, core.Node) float64 { return 0 }

// Options configures the A* search.
type Options struct {
	Heuristic Heuristic // defaults to Euclidean
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
// Passing nil panics with ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns Options with the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Euclidean}
}
