// Package store opens the edge backend selected by configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vanshika/campusroute/internal/config"
	"github.com/vanshika/campusroute/internal/edgefile"
	"github.com/vanshika/campusroute/internal/graphdb"
	"github.com/vanshika/campusroute/internal/repository"
	"github.com/vanshika/campusroute/internal/service"
	"github.com/vanshika/campusroute/internal/sqlstore"
)

// Backend is an edge store usable for queries, seeding and health probes.
type Backend interface {
	service.EdgeSource
	service.EdgeWriter
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// SchemaEnsurer is implemented by backends that can create their own schema.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

var (
	_ Backend       = (*sqlstore.Store)(nil)
	_ Backend       = (*repository.Repository)(nil)
	_ Backend       = (*edgefile.Source)(nil)
	_ SchemaEnsurer = (*sqlstore.Store)(nil)
	_ SchemaEnsurer = (*repository.Repository)(nil)
)

// Open validates cfg and connects to the configured backend.
func Open(ctx context.Context, logger *slog.Logger, cfg config.Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Store.Backend {
	case config.BackendSQL:
		s, err := sqlstore.Open(ctx, sqlstore.Options{
			Driver:       cfg.SQL.Driver,
			DSN:          cfg.SQL.DSN,
			Table:        cfg.SQL.Table,
			MaxOpenConns: cfg.SQL.MaxOpenConns,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to sql store", "driver", cfg.SQL.Driver, "table", cfg.SQL.Table)
		return s, nil

	case config.BackendNeo4j:
		client, err := graphdb.NewNeo4jClient(ctx, graphdb.Options{
			URI:            cfg.Graph.URI,
			Database:       cfg.Graph.Database,
			Username:       cfg.Graph.Username,
			Password:       cfg.Graph.Password,
			MaxConnections: cfg.Graph.MaxConnections,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
		return repository.New(client), nil

	case config.BackendFile:
		logger.Info("reading edges from file", "path", cfg.Store.EdgesFile)
		return edgefile.NewSource(cfg.Store.EdgesFile), nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Store.Backend)
}
