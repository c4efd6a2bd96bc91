package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/graphdb"
)

// ErrMalformedRecord indicates a returned row is missing a location name or
// carries a non-numeric distance.
var ErrMalformedRecord = errors.New("malformed edge record")

// Repository reads and writes campus edges stored as
// (:Location)-[:CONNECTED_TO {distance}]->(:Location) in the graph database.
type Repository struct {
	client graphdb.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graphdb.Client) *Repository {
	return &Repository{client: client}
}

// ListEdges returns every stored connection as an edge record.
func (r *Repository) ListEdges(ctx context.Context) ([]domain.Edge, error) {
	res, err := r.client.ExecuteRead(ctx, listEdgesCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list edges query: %w", err)
	}

	edges := make([]domain.Edge, 0, len(res.Records))
	for i, rec := range res.Records {
		source := toString(rec["source"])
		destination := toString(rec["destination"])
		distance, ok := toFloat64(rec["distance"])
		if source == "" || destination == "" || !ok {
			return nil, fmt.Errorf("%w: row %d", ErrMalformedRecord, i)
		}
		edges = append(edges, domain.Edge{
			Source:      source,
			Destination: destination,
			Distance:    distance,
		})
	}
	return edges, nil
}

// UpsertEdge ensures both locations exist and sets the distance of the
// connection between them, dropping a relationship stored the other way round.
func (r *Repository) UpsertEdge(ctx context.Context, edge domain.Edge) error {
	if edge.Source == "" || edge.Destination == "" {
		return errors.New("source and destination are required")
	}

	params := map[string]any{
		"source":      edge.Source,
		"destination": edge.Destination,
		"distance":    edge.Distance,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertEdgeCypher, params); err != nil {
		return fmt.Errorf("upsert edge %s-%s: %w", edge.Source, edge.Destination, err)
	}
	return nil
}

// EnsureSchema creates the uniqueness constraint on location names.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, locationConstraintCypher, nil); err != nil {
		return fmt.Errorf("create location constraint: %w", err)
	}
	return nil
}

// Ping verifies the graph database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.VerifyConnectivity(ctx)
}

// Close releases the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close(ctx)
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toFloat64(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

const listEdgesCypher = `
MATCH (a:Location)-[r:CONNECTED_TO]->(b:Location)
RETURN a.name AS source, b.name AS destination, r.distance AS distance
`

const upsertEdgeCypher = `
MERGE (a:Location {name: $source})
MERGE (b:Location {name: $destination})
WITH a, b
OPTIONAL MATCH (b)-[reversed:CONNECTED_TO]->(a)
DELETE reversed
WITH DISTINCT a, b
MERGE (a)-[r:CONNECTED_TO]->(b)
SET r.distance = $distance
`

const locationConstraintCypher = `
CREATE CONSTRAINT location_name IF NOT EXISTS
FOR (l:Location) REQUIRE l.name IS UNIQUE
`
