// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by core tests.

package core_test

import "github.com/katalvlaran/lvroute/core"

// Common node IDs used across core tests.
const (
	NodeA = 1
	NodeB = 2
	NodeC = 3
	NodeD = 4

	NodeMissing = 404
)

// buildScenarioA returns the reference graph
//
//	1 →(4) 2 →(1) 3 →(2) 4
//	1 ─────(10)───→ 3
func buildScenarioA() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(1, 2, 4)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 3, 10)
	g.AddEdge(3, 4, 2)

	return g
}
