// Command seed copies an edge file into the configured SQL table or Neo4j graph.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/vanshika/campusroute/internal/config"
	"github.com/vanshika/campusroute/internal/edgefile"
	"github.com/vanshika/campusroute/internal/logging"
	"github.com/vanshika/campusroute/internal/service"
	"github.com/vanshika/campusroute/internal/store"
)

type options struct {
	Input   string `short:"i" long:"input" required:"true" description:"Edge file (.yaml, .yml or .json) to load"`
	Backend string `long:"backend" choice:"sql" choice:"neo4j" description:"Target store, overrides STORE_BACKEND"`
	Workers int    `short:"w" long:"workers" default:"4" description:"Number of concurrent writers"`
	Schema  bool   `long:"create-schema" description:"Create the edge table or graph constraint before loading"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}

	logger := logging.New(cfg.Logging, os.Stdout).With("component", "seed")

	if cfg.Store.Backend == config.BackendFile {
		logger.Error("seeding requires the sql or neo4j backend")
		os.Exit(1)
	}

	edges, err := edgefile.Load(opts.Input)
	if err != nil {
		logger.Error("failed to load edges", "error", err, "path", opts.Input)
		os.Exit(1)
	}
	if len(edges) == 0 {
		logger.Error("edge file empty", "path", opts.Input)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backend, err := store.Open(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open edge store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Warn("closing edge store failed", "error", err)
		}
	}()

	if opts.Schema {
		if ensurer, ok := backend.(store.SchemaEnsurer); ok {
			if err := ensurer.EnsureSchema(ctx); err != nil {
				logger.Error("failed to create schema", "error", err)
				os.Exit(1)
			}
		}
	}

	start := time.Now()
	logger.Info("seeding edges", "count", len(edges), "workers", opts.Workers)
	if err := service.NewBulkLoader(backend, opts.Workers).LoadEdges(ctx, edges); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete", "duration", time.Since(start).String(), "edges", len(edges))
}
