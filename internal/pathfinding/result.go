package pathfinding

import "errors"

var (
	// ErrUnknownNode indicates the node never appeared in any edge.
	ErrUnknownNode = errors.New("no such node")

	// ErrNoPath indicates the node exists but cannot be reached from the source.
	ErrNoPath = errors.New("no path exists")
)

// Result maps every node to its final PathInfo.
type Result map[string]PathInfo

// Lookup returns the route to node. It fails with ErrUnknownNode when node is
// not part of the result and with ErrNoPath when node is unreached; the
// returned PathInfo is still populated in the latter case.
func (r Result) Lookup(node string) (PathInfo, error) {
	info, ok := r[node]
	if !ok {
		return PathInfo{}, ErrUnknownNode
	}
	if !info.Reachable() {
		return info, ErrNoPath
	}
	return info, nil
}
