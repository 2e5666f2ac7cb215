package graphio

import (
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// documentSchema describes the accepted exchange document.
func documentSchema() *jsonschema.Schema {
	node := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id"},
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "integer"},
			"x":  {Type: "number"},
			"y":  {Type: "number"},
		},
	}
	edge := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"from", "to", "weight"},
		Properties: map[string]*jsonschema.Schema{
			"from":   {Type: "integer"},
			"to":     {Type: "integer"},
			"weight": {Type: "number"},
		},
	}

	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"nodes", "edges"},
		Properties: map[string]*jsonschema.Schema{
			"nodes": {Type: "array", Items: node},
			"edges": {Type: "array", Items: edge},
		},
	}
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return documentSchema().Resolve(nil)
})
