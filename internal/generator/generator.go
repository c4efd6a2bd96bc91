// Package generator synthesises connected campus graphs for demos and load
// testing of the route finder.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vanshika/campusroute/internal/domain"
)

// Generator produces synthetic edge lists.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

var buildingKinds = []string{
	"Library", "Hall", "Lab", "Cafeteria", "Gym", "Auditorium",
	"Hostel", "Admin Block", "Workshop", "Gate", "Clinic", "Stadium",
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumLocations <= 1 {
		cfg.NumLocations = def.NumLocations
	}
	if cfg.ExtraEdgeChance < 0 {
		cfg.ExtraEdgeChance = 0
	}
	if cfg.MinDistance <= 0 {
		cfg.MinDistance = def.MinDistance
	}
	if cfg.MaxDistance < cfg.MinDistance {
		cfg.MaxDistance = cfg.MinDistance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Locations returns the generated location names in creation order.
func (g *Generator) Locations() []string {
	names := make([]string, g.cfg.NumLocations)
	for i := range names {
		kind := buildingKinds[i%len(buildingKinds)]
		names[i] = fmt.Sprintf("%s %d", kind, i/len(buildingKinds)+1)
	}
	return names
}

// Generate builds a random spanning tree over all locations and then adds
// shortcuts. Every location is reachable from every other one and each pair
// of locations appears at most once. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) ([]domain.Edge, error) {
	names := g.Locations()
	edges := make([]domain.Edge, 0, len(names)*2)
	linked := make(map[[2]int]struct{}, len(names)*2)
	link := func(i, j int) bool {
		if j < i {
			i, j = j, i
		}
		if _, ok := linked[[2]int{i, j}]; ok {
			return false
		}
		linked[[2]int{i, j}] = struct{}{}
		return true
	}

	for i := 1; i < len(names); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parent := g.rand.Intn(i)
		link(parent, i)
		edges = append(edges, g.edge(names[parent], names[i]))
	}

	for i := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.rand.Float64() >= g.cfg.ExtraEdgeChance {
			continue
		}
		j := g.rand.Intn(len(names))
		if j == i || !link(i, j) {
			continue
		}
		edges = append(edges, g.edge(names[i], names[j]))
	}

	return edges, nil
}

func (g *Generator) edge(a, b string) domain.Edge {
	span := g.cfg.MaxDistance - g.cfg.MinDistance
	d := g.cfg.MinDistance + g.rand.Float64()*span
	return domain.Edge{
		Source:      a,
		Destination: b,
		Distance:    math.Round(d*10) / 10,
	}
}
