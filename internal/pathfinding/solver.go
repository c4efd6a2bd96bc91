package pathfinding

import (
	"container/heap"
	"math"
)

// Unreached is the distance recorded for nodes that have no known path from
// the source.
var Unreached = math.Inf(1)

// PathInfo is the best known route from the source to one node.
type PathInfo struct {
	Distance float64
	// Path lists the nodes from the source to this node, both inclusive.
	// It is nil while the node is unreached.
	Path []string
}

// Reachable reports whether a path from the source was found.
func (p PathInfo) Reachable() bool {
	return !math.IsInf(p.Distance, 1)
}

// Solve computes the shortest distance and path from source to every node of
// g. The returned Result holds an entry for every graph node and for source,
// which is present with distance 0 and path [source] even when it never
// appeared in an edge. g is not modified.
func Solve(g Graph, source string) Result {
	r := &runner{
		g:       g,
		source:  source,
		paths:   make(Result, len(g)+1),
		visited: make(map[string]struct{}, len(g)),
		pq:      make(frontier, 0, len(g)),
	}
	r.init()
	r.process()
	return r.paths
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	g       Graph
	source  string
	paths   Result
	visited map[string]struct{}
	pq      frontier
	seq     uint64
}

func (r *runner) init() {
	for node := range r.g {
		r.paths[node] = PathInfo{Distance: Unreached}
	}
	r.paths[r.source] = PathInfo{Distance: 0, Path: []string{r.source}}

	heap.Init(&r.pq)
	r.push(r.source, 0)
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		if _, done := r.visited[item.node]; done {
			continue
		}
		r.visited[item.node] = struct{}{}
		r.relax(item.node)
	}
}

// relax tries to improve every neighbor of u through u. Neighbors are visited
// in sorted order and only a strictly shorter candidate replaces the current
// record, so among equal-length paths the first one discovered is kept.
func (r *runner) relax(u string) {
	current := r.paths[u]
	// A source absent from the graph has no neighbors.
	for _, v := range r.g.Neighbors(u) {
		candidate := current.Distance + r.g[u][v]
		if candidate >= r.paths[v].Distance {
			continue
		}

		path := make([]string, len(current.Path)+1)
		copy(path, current.Path)
		path[len(current.Path)] = v

		r.paths[v] = PathInfo{Distance: candidate, Path: path}
		r.push(v, candidate)
	}
}

func (r *runner) push(node string, dist float64) {
	r.seq++
	heap.Push(&r.pq, frontierItem{node: node, dist: dist, seq: r.seq})
}
