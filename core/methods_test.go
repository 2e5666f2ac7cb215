// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node auto-creation, coordinate overwrite and not-found semantics.
//   - Anchor ordering guarantees (ascending IDs, insertion-ordered adjacency).
//   - Pin UpdateEdgeWeight to the first matching parallel edge.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestGraph_AddNode verifies creation, defaults and coordinate overwrite.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(NodeA, 1.5, -2)

	n, ok := g.Node(NodeA)
	require.True(t, ok)
	assert.Equal(t, core.Node{ID: NodeA, X: 1.5, Y: -2}, n)

	// Overwrite keeps the node, replaces coordinates.
	g.AddNode(NodeA, 7, 8)
	n, _ = g.Node(NodeA)
	assert.Equal(t, 7.0, n.X)
	assert.Equal(t, 8.0, n.Y)
	assert.Equal(t, 1, g.NodeCount())
}

// TestGraph_AddNodeKeepsEdges ensures overwriting coordinates never drops adjacency.
func TestGraph_AddNodeKeepsEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeB, 3)
	g.AddNode(NodeA, 10, 10)

	edges, err := g.Edges(NodeA)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, NodeB, edges[0].To)
}

// TestGraph_AddEdgeAutoCreatesEndpoints verifies the endpoint invariant.
func TestGraph_AddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeC, NodeD, 2.5)

	assert.True(t, g.HasNode(NodeC))
	assert.True(t, g.HasNode(NodeD))

	n, ok := g.Node(NodeD)
	require.True(t, ok)
	assert.Zero(t, n.X)
	assert.Zero(t, n.Y)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_ParallelEdgesRetained checks that duplicates are not reconciled.
func TestGraph_ParallelEdgesRetained(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeB, 5)
	g.AddEdge(NodeA, NodeB, 1)
	g.AddEdge(NodeA, NodeA, 9) // self-loop retained too

	edges, err := g.Edges(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: NodeA, To: NodeB, Weight: 5},
		{From: NodeA, To: NodeB, Weight: 1},
		{From: NodeA, To: NodeA, Weight: 9},
	}, edges)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestGraph_EdgesNotFoundVsEmpty distinguishes "no such node" from "no edges".
func TestGraph_EdgesNotFoundVsEmpty(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(NodeA, 0, 0)

	edges, err := g.Edges(NodeA)
	require.NoError(t, err)
	assert.NotNil(t, edges)
	assert.Empty(t, edges)

	_, err = g.Edges(NodeMissing)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, ok := g.Node(NodeMissing)
	assert.False(t, ok)
	assert.False(t, g.HasNode(NodeMissing))
}

// TestGraph_EdgesReturnsCopy ensures callers cannot mutate adjacency through the result.
func TestGraph_EdgesReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeB, 4)

	edges, _ := g.Edges(NodeA)
	edges[0].Weight = 100

	again, _ := g.Edges(NodeA)
	assert.Equal(t, 4.0, again[0].Weight)
}

// TestGraph_UpdateEdgeWeight pins first-match semantics and the boolean signal.
func TestGraph_UpdateEdgeWeight(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeC, 8)
	g.AddEdge(NodeA, NodeB, 5)
	g.AddEdge(NodeA, NodeB, 6)

	require.True(t, g.UpdateEdgeWeight(NodeA, NodeB, 1))

	edges, _ := g.Edges(NodeA)
	assert.Equal(t, 8.0, edges[0].Weight, "unrelated edge untouched")
	assert.Equal(t, 1.0, edges[1].Weight, "first parallel edge updated")
	assert.Equal(t, 6.0, edges[2].Weight, "second parallel edge untouched")

	assert.False(t, g.UpdateEdgeWeight(NodeMissing, NodeB, 1), "unknown source")
	assert.False(t, g.UpdateEdgeWeight(NodeB, NodeA, 1), "no matching destination")
}

// TestGraph_UpdateEdgeWeightAt addresses a specific parallel edge.
func TestGraph_UpdateEdgeWeightAt(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeB, 5)
	g.AddEdge(NodeA, NodeB, 6)

	require.NoError(t, g.UpdateEdgeWeightAt(NodeA, 1, 2))
	edges, _ := g.Edges(NodeA)
	assert.Equal(t, 5.0, edges[0].Weight)
	assert.Equal(t, 2.0, edges[1].Weight)

	assert.ErrorIs(t, g.UpdateEdgeWeightAt(NodeMissing, 0, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.UpdateEdgeWeightAt(NodeA, 2, 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.UpdateEdgeWeightAt(NodeA, -1, 1), core.ErrEdgeNotFound)
}

// TestGraph_Ordering anchors ascending-ID enumeration regardless of insertion order.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(40, 0, 0)
	g.AddEdge(30, 10, 1)
	g.AddEdge(-5, 30, 2)
	g.AddEdge(30, 20, 3)

	assert.Equal(t, []int{-5, 10, 20, 30, 40}, g.NodeIDs())

	nodes := g.Nodes()
	require.Len(t, nodes, 5)
	assert.Equal(t, -5, nodes[0].ID)
	assert.Equal(t, 40, nodes[4].ID)

	assert.Equal(t, []core.Edge{
		{From: -5, To: 30, Weight: 2},
		{From: 30, To: 10, Weight: 1},
		{From: 30, To: 20, Weight: 3},
	}, g.AllEdges())
}

// TestGraph_Clone verifies that a clone is fully detached from its origin.
func TestGraph_Clone(t *testing.T) {
	g := buildScenarioA()
	c := g.Clone()

	assert.Equal(t, g.NodeIDs(), c.NodeIDs())
	assert.Equal(t, g.AllEdges(), c.AllEdges())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	c.UpdateEdgeWeight(1, 2, 99)
	c.AddNode(1, 5, 5)
	c.AddEdge(9, 1, 1)

	orig, _ := g.Edges(1)
	assert.Equal(t, 4.0, orig[0].Weight)
	n, _ := g.Node(1)
	assert.Zero(t, n.X)
	assert.False(t, g.HasNode(9))
}

// TestGraph_Empty covers the zero-node graph.
func TestGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, g.NodeIDs())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.AllEdges())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}
