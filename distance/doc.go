// Package distance computes, for every node of a staged event graph, the
// length of the longest directed path to the designated sink, and exposes
// generation-by-generation iteration over the result.
//
// What
//
//   - UpdateDistancesToSink(g): validates the single-sink DAG shape, then
//     assigns Node.DistToSink over reverse topological order
//     (sink = 0; node = 1 + max over direct successors).
//   - NodesWithIncreasingDistance(g, start): a finite, single-pass,
//     non-restartable iterator of ordered node batches, where batch k is
//     exactly the set of nodes at distance start+k.
//
// Why
//
//   - The merge pipeline must process situations strictly from the sink
//     outward: by the time a node at distance d is considered, all of its
//     successors (distance < d) have already reached their final merged
//     identity. The distance index defines that processing order.
//
// Max, not min
//
//	A node with several outgoing paths takes the LONGEST one. Adding a
//	shortcut edge from an upstream node straight to the sink never
//	shrinks its recorded distance below the value implied by its longest
//	remaining path.
//
// Failure semantics
//
//	Malformed input fails fast, before any node is written: ErrNoSink,
//	ErrMultipleSinks, ErrCycle. Iterating before distances exist fails
//	with ErrDistancesUnset.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - UpdateDistancesToSink: O(V + E) time, O(V) memory
//   - Iterator construction: O(V log V); Next: O(1)
package distance
