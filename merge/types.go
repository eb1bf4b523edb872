// Package merge provides error definitions for merge eligibility checking
// and node/edge contraction.
package merge

import "errors"

// Sentinel errors for merge operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("merge: graph is nil")

	// ErrNodeNotFound is returned when an operation references a node ID
	// absent from the graph.
	ErrNodeNotFound = errors.New("merge: node not found")

	// ErrIneligibleMerge is returned when a requested merge contains a
	// pair that fails the eligibility check. The whole request is
	// rejected; the graph is left unchanged.
	ErrIneligibleMerge = errors.New("merge: nodes are not eligible for merging")
)
