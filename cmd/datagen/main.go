// Command datagen writes a synthetic, connected campus graph as an edge file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/vanshika/campusroute/internal/edgefile"
	"github.com/vanshika/campusroute/internal/generator"
)

type options struct {
	Locations   int     `short:"n" long:"locations" description:"Number of locations to generate"`
	ExtraChance float64 `long:"extra-edge-chance" description:"Probability of a shortcut per location"`
	MinDistance float64 `long:"min-distance" description:"Shortest generated edge"`
	MaxDistance float64 `long:"max-distance" description:"Longest generated edge"`
	Seed        int64   `long:"seed" description:"Random seed for deterministic generation"`
	Output      string  `short:"o" long:"output" default:"data/campus.yaml" description:"Edge file to write (.yaml, .yml or .json)"`
}

func main() {
	def := generator.DefaultConfig()
	opts := options{
		Locations:   def.NumLocations,
		ExtraChance: def.ExtraEdgeChance,
		MinDistance: def.MinDistance,
		MaxDistance: def.MaxDistance,
		Seed:        def.Seed,
	}
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(generator.Config{
		NumLocations:    opts.Locations,
		ExtraEdgeChance: clampProbability(opts.ExtraChance),
		MinDistance:     opts.MinDistance,
		MaxDistance:     opts.MaxDistance,
		Seed:            opts.Seed,
	})
	edges, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := edgefile.Write(opts.Output, edges); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write edges: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d edges over %d locations into %s\n", len(edges), len(gen.Locations()), opts.Output)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
