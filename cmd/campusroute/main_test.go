package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/campusroute/internal/config"
	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/edgefile"
)

func fileConfig(t *testing.T) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, edgefile.Write(path, []domain.Edge{
		{Source: "A", Destination: "B", Distance: 2},
		{Source: "B", Destination: "C", Distance: 3},
		{Source: "A", Destination: "C", Distance: 10},
		{Source: "D", Destination: "E", Distance: 1},
	}))

	cfg := config.Config{Logging: config.LoggingConfig{Level: "error"}}
	applyOverrides(&cfg, options{EdgesFile: path})
	return cfg
}

func TestRun_Interactive(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), fileConfig(t), options{}, strings.NewReader("A\nC\n"), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t,
		"Enter the source node: Enter the destination node: "+
			"Shortest distance from A to C: 5\n"+
			"Shortest path: A -> B -> C\n",
		stdout.String())
}

func TestRun_FlagsWithLegs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := options{Source: "C", Destination: "A", Legs: true}
	code := run(context.Background(), fileConfig(t), opts, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Shortest distance from C to A: 5\nShortest path: C -> B -> A\n"))
	assert.Contains(t, stdout.String(), "HOPS")
}

func TestRun_QueryOutcomes(t *testing.T) {
	cases := []struct {
		name        string
		source      string
		destination string
		code        int
		output      string
	}{
		{"unknown destination", "A", "Z", exitUnknownNode, "No such node: Z\n"},
		{"unknown source", "Q", "A", exitUnknownNode, "No such node: Q\n"},
		{"no path", "A", "E", exitNoPath, "No path exists from A to E\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts := options{Source: tc.source, Destination: tc.destination}
			code := run(context.Background(), fileConfig(t), opts, strings.NewReader(""), &stdout, &stderr)

			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.output, stdout.String())
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), fileConfig(t), options{}, strings.NewReader("A\n"), &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
}

func TestRun_BadStore(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.Config{Store: config.StoreConfig{Backend: config.BackendFile, EdgesFile: "/nonexistent/edges.yaml"}}
	code := run(context.Background(), cfg, options{Source: "A", Destination: "B"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "failed to load route graph")
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{Store: config.StoreConfig{Backend: config.BackendSQL}}
	applyOverrides(&cfg, options{Backend: config.BackendNeo4j})
	assert.Equal(t, config.BackendNeo4j, cfg.Store.Backend)

	cfg = config.Config{Store: config.StoreConfig{Backend: config.BackendSQL}}
	applyOverrides(&cfg, options{EdgesFile: "edges.json"})
	assert.Equal(t, config.BackendFile, cfg.Store.Backend)
	assert.Equal(t, "edges.json", cfg.Store.EdgesFile)
}
