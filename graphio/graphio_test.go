package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/graphio"
	"github.com/katalvlaran/lvroute/internal/testgraph"
)

const scenarioJSON = `{
  "nodes": [
    {"id": 1, "x": 0, "y": 0},
    {"id": 2, "x": 4, "y": 0},
    {"id": 3, "x": 5, "y": 0},
    {"id": 4, "x": 7, "y": 0}
  ],
  "edges": [
    {"from": 1, "to": 2, "weight": 4},
    {"from": 2, "to": 3, "weight": 1},
    {"from": 1, "to": 3, "weight": 10},
    {"from": 3, "to": 4, "weight": 2}
  ]
}`

func TestDecode_Scenario(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(scenarioJSON))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, g.NodeIDs())
	assert.Equal(t, 4, g.EdgeCount())
	n, ok := g.Node(3)
	require.True(t, ok)
	assert.Equal(t, 5.0, n.X)

	edges, err := g.Edges(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 4}, {From: 1, To: 3, Weight: 10}}, edges)
}

func TestDecode_OptionalCoordinatesAndExtraFields(t *testing.T) {
	doc := `{"nodes":[{"id":9,"label":"depot"}],"edges":[{"from":9,"to":10,"weight":1.5,"lanes":2}],"meta":{"v":1}}`
	g, err := graphio.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	n, ok := g.Node(9)
	require.True(t, ok)
	assert.Zero(t, n.X)
	assert.Zero(t, n.Y)
	assert.True(t, g.HasNode(10), "edge endpoints are created on demand")
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"nodes": [`,
		"missing edges":   `{"nodes": []}`,
		"string id":       `{"nodes":[{"id":"a"}],"edges":[]}`,
		"fractional id":   `{"nodes":[{"id":1.5}],"edges":[]}`,
		"missing weight":  `{"nodes":[],"edges":[{"from":1,"to":2}]}`,
		"nodes not array": `{"nodes":{},"edges":[]}`,
		"top-level array": `[]`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := graphio.Decode(strings.NewReader(in))
			assert.ErrorIs(t, err, graphio.ErrInvalidDocument)
			assert.Nil(t, g)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	src := testgraph.Random(4, 15, 40)
	src.AddNode(-3, 1.25, -7.5)

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, src))

	got, err := graphio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Nodes(), got.Nodes())
	assert.Equal(t, src.AllEdges(), got.AllEdges())
}

func TestEncode_EmptyGraphHasArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, core.NewGraph()))
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, buf.String())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.json")
	require.NoError(t, os.WriteFile(path, []byte(scenarioJSON), 0o600))

	g, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())

	_, err = graphio.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
