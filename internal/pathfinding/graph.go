package pathfinding

import (
	"sort"

	"github.com/vanshika/campusroute/internal/domain"
)

// Graph maps each node to its neighbors and the weight of the connecting edge.
// It is symmetric: for every A→B of weight w there is a B→A of weight w.
type Graph map[string]map[string]float64

// Build converts edge records into a Graph. Each edge is inserted in both
// directions; the last record seen for a pair of nodes wins. An empty input
// yields an empty graph.
func Build(edges []domain.Edge) Graph {
	g := make(Graph)
	for _, e := range edges {
		g.link(e.Source, e.Destination, e.Distance)
		g.link(e.Destination, e.Source, e.Distance)
	}
	return g
}

func (g Graph) link(from, to string, weight float64) {
	neighbors, ok := g[from]
	if !ok {
		neighbors = make(map[string]float64)
		g[from] = neighbors
	}
	neighbors[to] = weight
}

// Len returns the number of nodes in the graph.
func (g Graph) Len() int {
	return len(g)
}

// HasNode reports whether id appeared in any edge.
func (g Graph) HasNode(id string) bool {
	_, ok := g[id]
	return ok
}

// Weight returns the weight of the edge between a and b.
func (g Graph) Weight(a, b string) (float64, bool) {
	w, ok := g[a][b]
	return w, ok
}

// Nodes returns the node identifiers in ascending order.
func (g Graph) Nodes() []string {
	nodes := make([]string, 0, len(g))
	for id := range g {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	return nodes
}

// Neighbors returns the neighbors of id in ascending order, or nil when id is
// not part of the graph.
func (g Graph) Neighbors(id string) []string {
	adj, ok := g[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// EdgeCount returns the number of undirected edges.
func (g Graph) EdgeCount() int {
	total := 0
	for from, adj := range g {
		for to := range adj {
			if from <= to {
				total++
			}
		}
	}
	return total
}
