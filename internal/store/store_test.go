package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/campusroute/internal/config"
	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/edgefile"
	"github.com/vanshika/campusroute/internal/logging"
	"github.com/vanshika/campusroute/internal/sqlstore"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Store: config.StoreConfig{Backend: config.BackendSQL},
		SQL:   config.SQLConfig{Driver: config.DriverSQLite, DSN: ":memory:", Table: "campusdistan"},
	}

	b, err := Open(ctx, logging.Discard(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close(ctx) })

	require.IsType(t, &sqlstore.Store{}, b)
	ensurer, ok := b.(SchemaEnsurer)
	require.True(t, ok)
	require.NoError(t, ensurer.EnsureSchema(ctx))
	require.NoError(t, b.UpsertEdge(ctx, domain.Edge{Source: "A", Destination: "B", Distance: 1}))

	edges, err := b.ListEdges(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestOpen_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "edges.yaml")
	require.NoError(t, edgefile.Write(path, []domain.Edge{{Source: "A", Destination: "B", Distance: 1}}))

	cfg := config.Config{Store: config.StoreConfig{Backend: config.BackendFile, EdgesFile: path}}
	b, err := Open(ctx, logging.Discard(), cfg)
	require.NoError(t, err)
	require.NoError(t, b.Ping(ctx))
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), logging.Discard(), config.Config{
		Store: config.StoreConfig{Backend: "redis"},
	})
	require.ErrorIs(t, err, config.ErrUnknownBackend)

	_, err = Open(context.Background(), logging.Discard(), config.Config{
		Store: config.StoreConfig{Backend: config.BackendNeo4j},
	})
	require.Error(t, err)
}
