// Package ceg turns a staged event graph into a chain event graph.
//
// What:
//
//	A chain event graph (CEG) is the quotient of a staged event tree:
//	situations that share a stage and are structurally equivalent (same
//	outgoing labels to the same destinations) collapse into one node,
//	with parallel edges folding together and their attribute bundles
//	merged. The result is the smallest multigraph that still encodes the
//	model's conditional independence statements.
//
//	CEG wraps the input graph; Generate runs the whole pipeline:
//	distances to the sink, sink-to-root merging by generation, leaf
//	trimming, and canonical relabeling (w0 for the root, winf for the
//	sink, w1..wN root-outward). Stages exposes the stage partition at
//	any phase, and Phase reports pipeline progress.
//
// Why:
//
//	Merging strictly from the sink outward is what makes a single
//	eligibility rule sufficient: when a generation is processed, every
//	successor already has its final identity, so "same outgoing edge
//	set" can be checked by direct comparison. Passes repeat until a full
//	sweep merges nothing, because a merge in one generation can make a
//	previously distinct pair upstream identical.
//
// Determinism:
//
//	Generation batches are sorted, candidate pairs are enumerated in
//	sorted stage and member order, and merge representatives are chosen
//	lexicographically, so a given input graph always produces the same
//	CEG with the same canonical labels.
//
// Failure semantics:
//
//	Generate fails fast: missing root/sink designations, cyclic input,
//	ambiguous sinks, and invalid options all abort before any mutation
//	reaches the caller's graph; ErrAlreadyGenerated guards against
//	re-running the pipeline on its own output.
//
// Complexity:
//
//	Each pass costs O(V·(V+E)) in the worst case (pairwise eligibility
//	within generations dominates); the number of passes is bounded by
//	the depth of the graph.
package ceg
