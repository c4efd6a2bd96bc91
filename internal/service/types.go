package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/campusroute/internal/domain"
)

// EdgeSource produces the flat edge list the route graph is built from.
type EdgeSource interface {
	ListEdges(ctx context.Context) ([]domain.Edge, error)
}

// EdgeWriter persists a single edge, replacing any previous distance.
type EdgeWriter interface {
	UpsertEdge(ctx context.Context, edge domain.Edge) error
}

// ErrInvalidEdge indicates an edge record that cannot be part of the graph.
var ErrInvalidEdge = errors.New("invalid edge")

// ErrNotLoaded is returned by queries issued before the graph was loaded.
var ErrNotLoaded = errors.New("route graph not loaded")

// NodeError ties a query failure to the endpoint that caused it.
type NodeError struct {
	Role string // source|destination
	Node string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Role, e.Node, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
