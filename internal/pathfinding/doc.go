// Package pathfinding builds an undirected weighted graph from edge records and
// computes single-source shortest paths over it with Dijkstra's algorithm.
//
// The graph is a plain adjacency mapping (node → neighbor → weight). Every
// edge is inserted in both directions and a repeated edge overwrites the
// weight recorded before it.
//
// Solve runs the lazy-deletion variant of Dijkstra: improved distances are
// pushed as new frontier entries and entries for already visited nodes are
// discarded when popped, so no decrease-key operation is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), dominated by the frontier in the worst case and by the
//     copied path of every node.
//
// Preconditions:
//
//   - Edge weights are finite and non-negative. The package does not check
//     this; edge sources are expected to validate their records.
//
// The solver never fails. Querying the result for a node that was never part
// of the graph yields ErrUnknownNode, and querying a node that cannot be
// reached from the source yields ErrNoPath.
package pathfinding
