// Package sqlstore reads campus edges from a relational table with the columns
// Source, Destination and Distance. MySQL, PostgreSQL and SQLite are supported.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vanshika/campusroute/internal/domain"
)

var (
	// ErrUnsupportedDriver indicates the requested driver is not registered.
	ErrUnsupportedDriver = errors.New("unsupported sql driver")

	// ErrInvalidTable indicates the table name is not a plain identifier.
	ErrInvalidTable = errors.New("invalid table name")

	// ErrNullColumn indicates a row with a NULL Source, Destination or Distance.
	ErrNullColumn = errors.New("edge row has a NULL column")
)

// Options configures a Store.
type Options struct {
	Driver       string
	DSN          string
	Table        string
	MaxOpenConns int
}

// Store is an edge table accessed through database/sql.
type Store struct {
	db      *sql.DB
	dialect dialect
	table   string
}

// Open connects to the database described by opts and verifies connectivity.
func Open(ctx context.Context, opts Options) (*Store, error) {
	d, err := lookupDialect(opts.Driver)
	if err != nil {
		return nil, err
	}
	if !identifierRegex.MatchString(opts.Table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, opts.Table)
	}

	db, err := sql.Open(d.driverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", d.name, err)
	}

	switch {
	case d.name == "sqlite":
		// A single connection keeps in-memory databases alive and serialises writers.
		db.SetMaxOpenConns(1)
	case opts.MaxOpenConns > 0:
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", d.name, err)
	}

	return &Store{db: db, dialect: d, table: opts.Table}, nil
}

// EnsureSchema creates the edge table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable(s.table)); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// ListEdges returns every row of the edge table in storage order.
func (s *Store) ListEdges(ctx context.Context) ([]domain.Edge, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.selectEdges(s.table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var edges []domain.Edge
	for rows.Next() {
		var (
			source      sql.NullString
			destination sql.NullString
			distance    sql.NullFloat64
		)
		if err := rows.Scan(&source, &destination, &distance); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		if !source.Valid || !destination.Valid || !distance.Valid {
			return nil, fmt.Errorf("%w: row %d of %s", ErrNullColumn, len(edges), s.table)
		}
		edges = append(edges, domain.Edge{
			Source:      source.String,
			Destination: destination.String,
			Distance:    distance.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return edges, nil
}

// UpsertEdge replaces any row for the pair, stored in either direction, with
// the given edge.
func (s *Store) UpsertEdge(ctx context.Context, edge domain.Edge) error {
	if edge.Source == "" || edge.Destination == "" {
		return errors.New("source and destination are required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, s.dialect.deleteEdge(s.table),
		edge.Source, edge.Destination, edge.Destination, edge.Source); err != nil {
		return fmt.Errorf("delete edge %s-%s: %w", edge.Source, edge.Destination, err)
	}
	if _, err := tx.ExecContext(ctx, s.dialect.insertEdge(s.table), edge.Source, edge.Destination, edge.Distance); err != nil {
		return fmt.Errorf("insert edge %s-%s: %w", edge.Source, edge.Destination, err)
	}
	return tx.Commit()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close(context.Context) error {
	return s.db.Close()
}
