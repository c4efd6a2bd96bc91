// Package graphdb wraps the Neo4j Bolt driver behind a small query interface
// so that edge repositories can be exercised without a running database.
package graphdb

import (
	"context"
	"errors"
)

// Client runs Cypher against the graph that stores campus locations and their
// CONNECTED_TO relationships. Reads list edges, writes upsert them or create
// the location constraint.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result holds the rows of one Cypher statement, already detached from the
// driver session so callers can read them after it is closed.
type Result struct {
	Records []Record
}

// Record is one row keyed by RETURN alias, such as source, destination and
// distance for the edge listing.
type Record map[string]any

// Options locates the Neo4j database holding the campus graph.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI is returned by NewNeo4jClient when Options.URI is empty.
var ErrMissingURI = errors.New("graph URI is required")
