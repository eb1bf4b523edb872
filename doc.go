// Package cegraph is an in-memory engine for Chain Event Graphs (CEGs) —
// compact multigraph representations of staged probabilistic event trees,
// used for Bayesian model comparison of categorical processes.
//
// 🚀 What is cegraph?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: a directed multigraph of situations with labeled
//		  parallel edges and numeric attribute bundles
//		• Event trees: deterministic construction from ordered path counts,
//		  with stages, priors, posteriors and probability estimates
//		• Distance engine: longest-path-to-sink over a single-sink DAG,
//		  with generation-by-generation iteration
//		• Merge engine: stage-driven node contraction with attribute-correct
//		  edge merging (additive counts, first-seen probability)
//		• Orchestration: the full generate pipeline — distances, sink-to-root
//		  merging, leaf trimming, canonical relabeling
//
// ✨ Why choose cegraph?
//
//   - Predictable – every transformation is deterministic given its input
//   - Rock-solid guarantees – fail-fast validation, no partial merges
//   - Pure Go – no cgo, no hidden deps
//   - Explicit – contraction and attribute merging are first-class code,
//     never delegated to generic graph-library relabeling
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — Graph, Node, Edge types & thread-safe primitives
//	eventtree/ — event-tree and staged-tree construction
//	distance/  — distance-to-sink computation & generation iteration
//	merge/     — merge eligibility checks and node/edge contraction
//	ceg/       — the CEG orchestrator, trimming, relabeling, stages view
//
// Quick ASCII example:
//
//	    s0───a──▶s1───c──▶s3───e──▶(sink)
//	     │        └──d──▶s4───f──▶(sink)
//	     └───b──▶s2───c──▶s3
//	              └──d──▶s4
//
//	s1 and s2 share a stage and identical successors, so the generated
//	CEG collapses them into a single position.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/cegraph
package cegraph
