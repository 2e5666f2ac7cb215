// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvroute/core"
)

// ErrInvalidDocument indicates input that is not a valid exchange document.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// NodeDoc is one element of "nodes".
type NodeDoc struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// EdgeDoc is one element of "edges".
type EdgeDoc struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Document is the exchange form of a graph.
type Document struct {
	Nodes []NodeDoc `json:"nodes"`
	Edges []EdgeDoc `json:"edges"`
}

// FromGraph snapshots g in canonical order.
func FromGraph(g *core.Graph) Document {
	doc := Document{
		Nodes: make([]NodeDoc, 0, g.NodeCount()),
		Edges: make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range g.AllEdges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Graph builds a new core.Graph from the document, nodes first.
func (d Document) Graph() *core.Graph {
	g := core.NewGraph()
	for _, n := range d.Nodes {
		g.AddNode(n.ID, n.X, n.Y)
	}
	for _, e := range d.Edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

// Decode reads one document from r, validates it and returns the graph.
// Validation failures wrap ErrInvalidDocument.
func Decode(r io.Reader) (*core.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	var instance any
	if err = json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	schema, err := resolvedSchema()
	if err != nil {
		return nil, fmt.Errorf("graphio: schema: %w", err)
	}
	if err = schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err = json.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
		// Schema-valid but unrepresentable, e.g. an id beyond int range.
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.Graph(), nil
}

// Load decodes the document stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}

	return g, nil
}

// Encode writes g to w as an indented document.
func Encode(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}
