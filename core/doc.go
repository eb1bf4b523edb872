// Package core provides the staged event multigraph at the heart of
// cegraph: a directed multigraph of situations with labeled parallel
// edges, per-edge numeric attribute bundles, per-node stage and
// distance-to-sink state, and first-class root/sink designation.
//
// What
//
//   - Graph: directed multigraph; edge identity = (From, To, Label).
//   - Node: situation with Stage ("" = unstaged) and DistToSink
//     (DistUnset until the distance engine runs).
//   - Edge: labeled transition carrying an AttrMap of numeric attributes
//     (count, prior, posterior, probability).
//   - Root and sink are designated explicitly via SetRoot/SetSink —
//     they are graph state, never inferred from node-name patterns.
//
// Why
//
//   - The CEG pipeline (distance, merge, trim, orchestrate) mutates one
//     shared store in place; core gives it constant-time edge identity
//     checks, predecessor queries, and deterministic sorted accessors so
//     every downstream pass is reproducible.
//
// Determinism
//
//	Nodes(), Edges(), OutEdges(), InEdges(), Successors() and
//	Predecessors() all return sorted results, so iteration order never
//	depends on map layout.
//
// Concurrency
//
//	Two RWMutex locks (nodes vs. edges+adjacency) make concurrent reads
//	safe. The CEG pipeline itself is single-threaded; callers must not
//	mutate a graph concurrently with a generate run.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Add/Remove/Has for nodes and edges: O(1) amortized
//   - RemoveNode, RenameNode: O(deg(v))
//   - Sorted accessors: O(n log n) in their result size
//   - Clone: O(V + E)
package core
