// Package testgraph provides deterministic graph fixtures and an independent
// shortest-path oracle (gonum) for solver tests across lvroute packages.
package testgraph

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/core"
)

// ScenarioA returns nodes {1,2,3,4} with edges 1→2(4), 2→3(1), 1→3(10), 3→4(2).
// Shortest 1→4 is [1 2 3 4] with weight 7.
func ScenarioA() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(1, 2, 4)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 3, 10)
	g.AddEdge(3, 4, 2)

	return g
}

// ScenarioB is ScenarioA plus an isolated node 5.
func ScenarioB() *core.Graph {
	g := ScenarioA()
	g.AddNode(5, 0, 0)

	return g
}

// Random builds a graph with n nodes (IDs 0..n-1) on random integer
// coordinates in [0,100)² and m random directed edges. Each edge weight is
// the Euclidean distance of its endpoints times a factor in [1, 2), so the
// Euclidean heuristic stays admissible. Self-loops and parallel edges occur.
func Random(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(i, float64(r.Intn(100)), float64(r.Intn(100)))
	}
	if n == 0 {
		return g
	}
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		a, _ := g.Node(u)
		b, _ := g.Node(v)
		d := math.Hypot(a.X-b.X, a.Y-b.Y)
		g.AddEdge(u, v, d*(1+r.Float64()))
	}

	return g
}

// Oracle answers shortest-path weights using gonum's Dijkstra on a copy of g.
// Parallel edges collapse to their minimum weight; self-loops are dropped
// because they never shorten a path with non-negative weights.
type Oracle struct {
	wg *simple.WeightedDirectedGraph
}

// NewOracle mirrors g into a gonum weighted directed graph.
func NewOracle(g *core.Graph) *Oracle {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range g.NodeIDs() {
		wg.AddNode(simple.Node(id))
	}

	best := make(map[[2]int]float64)
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		k := [2]int{e.From, e.To}
		if w, ok := best[k]; !ok || e.Weight < w {
			best[k] = e.Weight
		}
	}
	for k, w := range best {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(k[0]), simple.Node(k[1]), w))
	}

	return &Oracle{wg: wg}
}

// Weight returns the shortest s→t weight, +Inf when t is unreachable.
func (o *Oracle) Weight(s, t int) float64 {
	sp := path.DijkstraFrom(simple.Node(s), o.wg)

	return sp.WeightTo(int64(t))
}
