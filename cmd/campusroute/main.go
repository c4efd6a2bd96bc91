// Command campusroute loads the campus edge table and prints the shortest
// route between two locations.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/vanshika/campusroute/internal/config"
	"github.com/vanshika/campusroute/internal/logging"
	"github.com/vanshika/campusroute/internal/pathfinding"
	"github.com/vanshika/campusroute/internal/report"
	"github.com/vanshika/campusroute/internal/service"
	"github.com/vanshika/campusroute/internal/store"
)

const (
	exitOK = iota
	exitFailure
	exitUnknownNode
	exitNoPath
)

type options struct {
	Source      string `short:"s" long:"source" description:"Location to start from; prompted for when omitted"`
	Destination string `short:"d" long:"destination" description:"Location to reach; prompted for when omitted"`
	Backend     string `long:"backend" choice:"sql" choice:"neo4j" choice:"file" description:"Edge store, overrides STORE_BACKEND"`
	EdgesFile   string `long:"edges-file" description:"Edge file for the file backend, overrides EDGES_FILE"`
	Legs        bool   `long:"legs" description:"Print every hop of the route as a table"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(exitOK)
		}
		os.Exit(exitFailure)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitFailure)
	}
	applyOverrides(&cfg, opts)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, cfg, opts, os.Stdin, os.Stdout, os.Stderr))
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}
	if opts.EdgesFile != "" {
		cfg.Store.EdgesFile = opts.EdgesFile
		if opts.Backend == "" {
			cfg.Store.Backend = config.BackendFile
		}
	}
}

func run(ctx context.Context, cfg config.Config, opts options, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logging.New(cfg.Logging, stderr).With("component", "campusroute")

	backend, err := store.Open(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open edge store", "error", err)
		return exitFailure
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Warn("closing edge store failed", "error", err)
		}
	}()

	svc := service.NewRouteService(backend)
	stats, err := svc.Load(ctx)
	if err != nil {
		logger.Error("failed to load route graph", "error", err)
		return exitFailure
	}
	logger.Debug("route graph loaded", "nodes", stats.Nodes, "edges", stats.Edges)

	in := bufio.NewScanner(stdin)
	source, err := valueOrPrompt(in, stdout, opts.Source, "Enter the source node: ")
	if err != nil {
		logger.Error("failed to read source node", "error", err)
		return exitFailure
	}
	destination, err := valueOrPrompt(in, stdout, opts.Destination, "Enter the destination node: ")
	if err != nil {
		logger.Error("failed to read destination node", "error", err)
		return exitFailure
	}

	route, err := svc.ShortestRoute(source, destination)
	if err != nil {
		msg, ok := report.DescribeError(source, destination, err)
		if !ok {
			logger.Error("route query failed", "error", err)
			return exitFailure
		}
		fmt.Fprintln(stdout, msg)
		if errors.Is(err, pathfinding.ErrUnknownNode) {
			return exitUnknownNode
		}
		return exitNoPath
	}

	if err := report.WriteRoute(stdout, route); err != nil {
		logger.Error("failed to write route", "error", err)
		return exitFailure
	}
	if opts.Legs && len(route.Legs) > 0 {
		report.WriteLegs(stdout, route)
	}
	return exitOK
}

func valueOrPrompt(in *bufio.Scanner, out io.Writer, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSuffix(in.Text(), "\r"), nil
}
