// Package core defines the central Graph, Node, and Edge types for staged
// event trees and chain event graphs, and provides thread-safe primitives
// for building, querying, and cloning them.
//
// A core.Graph is always a directed multigraph: parallel edges between the
// same ordered pair of nodes are distinguished by their Label, and an edge's
// identity is the full (From, To, Label) triple. Each edge carries a small
// numeric attribute bundle (AttrMap); each node carries its stage assignment
// and its distance to the designated sink.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for
// nodes, muEdge for edges and adjacency), so you can safely read your graphs
// across goroutines with minimal contention.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrNodeExists     - target node ID is already taken.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrDuplicateEdge  - an edge with the same (from, to, label) already exists.
//	ErrLoopNotAllowed - self-loop attempted.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeExists indicates a rename targeted an ID that is already taken.
	ErrNodeExists = errors.New("core: node ID already taken")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge with an identical (from, to, label)
	// triple already exists in the graph.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted; event trees and
	// chain event graphs are acyclic, so loops are always rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Standard edge attribute keys used by the CEG pipeline.
//
// AttrCount, AttrPrior and AttrPosterior are additive: when two parallel
// edges collapse into one, their values are summed (missing keys read as
// zero). AttrProbability is a derived ratio, not a tally, and is never
// summed — the merge rule keeps the first operand's value.
const (
	AttrCount       = "count"
	AttrPrior       = "prior"
	AttrPosterior   = "posterior"
	AttrProbability = "probability"
)

// DistUnset marks a node whose distance to the sink has not been computed.
const DistUnset = -1

// AttrMap is the numeric attribute bundle carried by every edge.
// Missing keys are read as zero; see Get.
type AttrMap map[string]float64

// Get returns the value stored under key, or 0 when the key is absent.
func (a AttrMap) Get(key string) float64 {
	if a == nil {
		return 0
	}

	return a[key]
}

// Has reports whether key is present in the map.
func (a AttrMap) Has(key string) bool {
	_, ok := a[key]

	return ok
}

// Clone returns an independent copy of the map. A nil map clones to an
// empty, non-nil map so callers may mutate the result freely.
func (a AttrMap) Clone() AttrMap {
	out := make(AttrMap, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Node represents a situation in the event graph.
//
// Stage is the equivalence-class label assigned by an external
// model-selection step; the empty string means "unstaged".
// DistToSink is the length (edge count) of the longest directed path to the
// designated sink, or DistUnset until computed.
type Node struct {
	// ID is the unique identifier for this node within its Graph.
	ID string

	// Stage is the stage label, or "" when the node is unstaged.
	Stage string

	// DistToSink is the longest-path distance to the sink, DistUnset
	// until distance.UpdateDistancesToSink has run.
	DistToSink int
}

// Edge represents a labeled transition between two situations.
//
// The (From, To, Label) triple is the edge's identity: the Label is what
// distinguishes parallel edges between the same ordered pair.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Label is the transition label (the observed event category).
	Label string

	// Attrs holds the numeric attribute bundle (counts, priors, ...).
	Attrs AttrMap
}

// Key returns the identity triple of the edge.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{From: e.From, To: e.To, Label: e.Label}
}

// EdgeKey is the (source, destination, label) identity of an edge,
// usable as a map key and as the wire form exposed to consumers.
type EdgeKey struct {
	From, To, Label string
}
