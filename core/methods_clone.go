// File: methods_clone.go
// Role: Deep copy of a Graph.
package core

// Clone returns a deep copy: nodes, coordinates and every adjacency slice.
// Mutating the clone never affects g, which lets callers snapshot a graph
// before handing it to a long-running solver.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	g.nodes.Scan(func(id int, e *entry) bool {
		out := make([]Edge, len(e.out))
		copy(out, e.out)
		c.nodes.Set(id, &entry{node: e.node, out: out})
		return true
	})
	c.edgeCount = g.edgeCount

	return c
}
