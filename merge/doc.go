// Package merge decides when two same-stage situations are structurally
// interchangeable and performs the contraction that collapses them — the
// step that turns a staged event tree into a chain event graph.
//
// What
//
//   - NodesCanBeMerged(g, u, v): true iff u and v carry the same non-empty
//     stage AND have identical outgoing (label → destination) behavior.
//     Destinations must coincide exactly — structural equivalence
//     elsewhere in the graph does not count.
//   - MergeEdgeData(e1, e2): the attribute merge rule. Union of keys;
//     every key but probability summed with missing-as-zero; probability
//     keeps the FIRST operand's value (it is a ratio, not a tally).
//   - MergeNodes(g, pairs): union-find over the declared pairs, then per
//     component: re-home edges onto the lexicographically smallest member,
//     merge triple collisions, delete the absorbed nodes. All-or-nothing:
//     one ineligible pair rejects the whole request untouched.
//   - MergeAndAddEdges(g, new, old1, old2): convenience re-homing of two
//     source nodes' outgoing edges onto a fresh node.
//
// Why
//
//   - Same-stage situations with matching subtree structure are, by the
//     stage assignment's meaning, statistically indistinguishable; the CEG
//     replaces each such group with one representative while keeping the
//     accumulated evidence (counts, priors, posteriors) intact.
//
// Determinism
//
//	Representatives are the smallest member of each component; edges are
//	processed in the store's sorted order; collision merging always puts
//	the surviving edge first. The same input produces the same graph.
//
// Eligibility is re-evaluated live by the orchestrator each generation:
// earlier merges change successors, which can make previously ineligible
// pairs eligible.
package merge
