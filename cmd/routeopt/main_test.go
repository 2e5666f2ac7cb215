package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/shell"
)

func writeGraph(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "g.json")
	doc := `{"nodes":[{"id":1},{"id":2}],"edges":[{"from":1,"to":2,"weight":1.5}]}`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))

	return p
}

func TestRun_OneShotWithStartupGraph(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-graph", writeGraph(t), "-precision", "3", "shortest_path", "dijkstra", "1", "2"}

	err := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Path: 1 -> 2\nWeight: 1.500\n")
}

func TestRun_UnknownCommandExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"frobnicate"}, strings.NewReader(""), &stdout, &stderr)

	var exitErr *shell.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestRun_BadFlagExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-log-level", "shout"}, strings.NewReader(""), &stdout, &stderr)

	var exitErr *shell.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestRun_HelpFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-h"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_Interactive(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("add_node 7 1 2\nexit\n")
	require.NoError(t, run(context.Background(), nil, in, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Node 7 added.")
}
