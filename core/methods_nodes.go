// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() and Nodes() return nodes sorted by ID ascending.
package core

// AddNode creates the node if it is absent, otherwise overwrites its coordinates.
//
// Behavior highlights:
//   - Always succeeds; there is no error path.
//   - Existing outgoing edges are untouched when coordinates are overwritten.
//
// Complexity:
//   - Time O(log V), Space O(1) amortized.
func (g *Graph) AddNode(id int, x, y float64) {
	if e, ok := g.nodes.Get(id); ok {
		e.node.X, e.node.Y = x, y

		return
	}
	g.nodes.Set(id, &entry{node: Node{ID: id, X: x, Y: y}})
}

// ensureNode creates id at the origin if it is missing and returns its catalog slot.
func (g *Graph) ensureNode(id int) *entry {
	if e, ok := g.nodes.Get(id); ok {
		return e
	}
	e := &entry{node: Node{ID: id}}
	g.nodes.Set(id, e)

	return e
}

// HasNode reports whether id has been added, explicitly or as an edge endpoint.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes.Get(id)

	return ok
}

// Node returns the attributes of id and true, or the zero Node and false when absent.
func (g *Graph) Node(id int) (Node, bool) {
	e, ok := g.nodes.Get(id)
	if !ok {
		return Node{}, false
	}

	return e.node, true
}

// NodeIDs returns every node ID in ascending order.
//
// Algorithms that enumerate the graph (Floyd-Warshall indexing, Dijkstra's
// +Inf initialization) inherit this order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	ids := make([]int, 0, g.nodes.Len())
	g.nodes.Scan(func(id int, _ *entry) bool {
		ids = append(ids, id)
		return true
	})

	return ids
}

// Nodes returns a copy of every node's attributes in ascending ID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.nodes.Len())
	g.nodes.Scan(func(_ int, e *entry) bool {
		out = append(out, e.node)
		return true
	})

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return g.nodes.Len() }
