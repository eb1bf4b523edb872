// Package eventtree provides error definitions and input types for event
// tree construction.
package eventtree

import "errors"

// Sentinel errors for event tree construction and staging.
var (
	// ErrNoPaths is returned when no path counts are supplied.
	ErrNoPaths = errors.New("eventtree: no paths supplied")

	// ErrEmptyPath is returned for a path with zero categories.
	ErrEmptyPath = errors.New("eventtree: empty path")

	// ErrBadCount is returned for a non-positive observation count.
	ErrBadCount = errors.New("eventtree: count must be positive")

	// ErrOrphanPath is returned when a path's immediate prefix has not
	// appeared before it; paths must arrive prefix-first, the order a
	// row-by-row tally naturally produces.
	ErrOrphanPath = errors.New("eventtree: path prefix not seen yet")

	// ErrDuplicatePath is returned when the same path key appears twice.
	ErrDuplicatePath = errors.New("eventtree: duplicate path")

	// ErrUnknownNode is returned when an operation references a node
	// absent from the tree.
	ErrUnknownNode = errors.New("eventtree: unknown node")

	// ErrLeafStage is returned when a stage is assigned to a leaf; only
	// situations (non-terminal nodes) carry transition behavior.
	ErrLeafStage = errors.New("eventtree: cannot stage a leaf")

	// ErrBadPrior is returned for a non-positive phantom sample mass.
	ErrBadPrior = errors.New("eventtree: prior mass must be positive")
)

// nodePrefix is the event-tree naming scheme: the root is "s0" and each
// subsequent path gets the next ordinal.
const nodePrefix = "s"

// SinkID is the identifier of the synthetic accumulation node that all
// leaves collapse into when a staged tree emits its CEG input graph.
const SinkID = "s_inf"

// PathCount is one distinct event path and its observation tally. A path
// lists the categories taken from the root, one per variable; every
// prefix of an observed row is itself a path with its own count.
type PathCount struct {
	Path  []string
	Count int
}
