package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
)

// RouteService loads the campus graph from an edge source and answers
// shortest-route queries against it.
type RouteService struct {
	source EdgeSource

	mu    sync.RWMutex
	graph pathfinding.Graph
}

// GraphStats summarises the loaded graph.
type GraphStats struct {
	Nodes int
	Edges int
}

// NewRouteService constructs a RouteService reading edges from source.
func NewRouteService(source EdgeSource) *RouteService {
	return &RouteService{source: source}
}

// Load fetches every edge, validates it and builds the graph used by later
// queries. The previous graph, if any, is kept when loading fails.
func (s *RouteService) Load(ctx context.Context) (GraphStats, error) {
	edges, err := s.source.ListEdges(ctx)
	if err != nil {
		return GraphStats{}, fmt.Errorf("list edges: %w", err)
	}
	if err := ValidateEdges(edges); err != nil {
		return GraphStats{}, err
	}

	g := pathfinding.Build(edges)

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	return GraphStats{Nodes: g.Len(), Edges: g.EdgeCount()}, nil
}

// ShortestRoute returns the shortest route from source to destination.
//
// It fails with pathfinding.ErrUnknownNode when either endpoint never appeared
// in an edge and with pathfinding.ErrNoPath when the destination cannot be
// reached. A query from a location to itself succeeds with distance zero.
func (s *RouteService) ShortestRoute(source, destination string) (domain.Route, error) {
	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()

	if g == nil {
		return domain.Route{}, ErrNotLoaded
	}
	if !g.HasNode(source) {
		return domain.Route{}, &NodeError{Role: "source", Node: source, Err: pathfinding.ErrUnknownNode}
	}

	info, err := pathfinding.Solve(g, source).Lookup(destination)
	if err != nil {
		return domain.Route{}, &NodeError{Role: "destination", Node: destination, Err: err}
	}

	return domain.Route{
		Source:      source,
		Destination: destination,
		Distance:    info.Distance,
		Path:        info.Path,
		Legs:        legs(g, info.Path),
	}, nil
}

func legs(g pathfinding.Graph, path []string) []domain.Leg {
	if len(path) < 2 {
		return nil
	}
	out := make([]domain.Leg, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		w, _ := g.Weight(path[i-1], path[i])
		out = append(out, domain.Leg{From: path[i-1], To: path[i], Distance: w})
	}
	return out
}
