// Package eventtree builds event trees from observed category paths and
// layers stage structure on top of them.
//
// What:
//
//	An event tree unfolds a multivariate sample one variable at a time:
//	the root "s0" is the empty history, and every distinct prefix of an
//	observed row becomes a situation "s1", "s2", ... in first-appearance
//	order. Edges carry the category taken as their label and the
//	observation tally in their "count" attribute.
//
//	A StagedTree adds the modeling assertion: situations placed in the
//	same stage share a transition distribution. ApplyPriors spreads a
//	phantom sample down the tree, ComputeProbabilities normalizes edges
//	into distributions, and Graph collapses all leaves into a single
//	sink, yielding the input a CEG is generated from.
//
// Why:
//
//	Chain event graphs start from staged trees; this package is the
//	front door that turns raw rows into that starting point without the
//	caller hand-assembling nodes and edges.
//
// Determinism:
//
//	Node numbering follows input order exactly, and all accessors return
//	creation-ordered or sorted results, so identical inputs produce
//	identical trees.
//
// Complexity:
//
//	FromRows is O(R·V) for R rows of V variables; the staging and
//	probability passes are linear in the number of edges.
package eventtree
