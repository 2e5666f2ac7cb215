// Package graphio reads and writes the JSON exchange form of a core.Graph:
//
//	{
//	  "nodes": [{"id": 1, "x": 0.0, "y": 0.0}],
//	  "edges": [{"from": 1, "to": 2, "weight": 4.0}]
//	}
//
// Input is validated against a JSON Schema before any node is created, so a
// rejected document never yields a partial graph. "x" and "y" are optional
// (default 0); unknown fields are ignored. Nodes are added before edges, and
// edges referencing undeclared nodes create them at (0,0) the same way
// core.Graph.AddEdge does.
//
// Encode writes nodes ascending by id and edges by source id, then insertion
// order, so Decode(Encode(g)) reproduces g exactly.
package graphio
