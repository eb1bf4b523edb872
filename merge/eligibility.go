// Package merge: eligibility checking.
package merge

import (
	"fmt"

	"github.com/katalvlaran/cegraph/core"
)

// NodesCanBeMerged reports whether u and v may be contracted into one
// node. Eligible means:
//
//  1. Both carry the same non-empty stage label.
//  2. The multiset of outgoing edge labels of u equals that of v.
//  3. For every label, the destination reached from u and from v is the
//     same node — successor sets coincide exactly, not just isomorphically.
//
// Unstaged nodes are never eligible; a node is not mergeable with itself.
// There is no partial or fuzzy matching: any violation yields false.
//
// Returns ErrGraphNil or ErrNodeNotFound (the check itself never fails for
// well-formed input). Complexity: O(deg(u) + deg(v)).
func NodesCanBeMerged(g *core.Graph, u, v string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	uOut, err := outgoingSet(g, u)
	if err != nil {
		return false, err
	}
	vOut, err := outgoingSet(g, v)
	if err != nil {
		return false, err
	}
	if u == v {
		return false, nil
	}

	uStage, err := g.Stage(u)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, u)
	}
	vStage, err := g.Stage(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, v)
	}
	if uStage == "" || uStage != vStage {
		return false, nil
	}

	if len(uOut) != len(vOut) {
		return false, nil
	}
	for key := range uOut {
		if _, ok := vOut[key]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// outgoingKey is the (destination, label) footprint of one outgoing edge.
type outgoingKey struct {
	to, label string
}

// outgoingSet captures a node's outgoing behavior as a set of
// (destination, label) pairs. Edge identity makes each pair unique.
func outgoingSet(g *core.Graph, id string) (map[outgoingKey]struct{}, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	set := make(map[outgoingKey]struct{}, len(edges))
	for _, e := range edges {
		set[outgoingKey{to: e.To, label: e.Label}] = struct{}{}
	}

	return set, nil
}
