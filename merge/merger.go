// Package merge: node contraction.
//
// Contraction is explicit, never delegated to a generic relabeling call:
// (1) union-find over the declared pairs finds the merge components,
// (2) each component's edges are re-homed onto its representative with
// collisions resolved by MergeEdgeData, (3) absorbed nodes are deleted.
// The domain-specific probability-vs-additive attribute distinction makes
// library contraction defaults wrong here.
package merge

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cegraph/core"
)

// MergeNodes contracts each connected component of the declared pairs into
// a single node. The pairs may chain: merging {A,B}, {B,C}, {A,C} collapses
// all three into one. The representative of a component is its
// lexicographically smallest member — arbitrary but deterministic.
//
// Contract:
//   - Every pair must pass NodesCanBeMerged; any failure rejects the WHOLE
//     request with ErrIneligibleMerge (no partial mutation).
//   - Incoming edges of absorbed members are redirected to the
//     representative, preserving (source, label); outgoing edges are
//     redirected from it, preserving (destination, label).
//   - When redirection collides on a full (source, destination, label)
//     triple, the bundles merge via MergeEdgeData — the representative's
//     existing edge is the first operand, absorbed members follow in
//     sorted order.
//   - Absorbed nodes are deleted; no dangling references remain.
//
// Complexity: O(P α(P) + Σ deg(member) log) for P pairs.
func MergeNodes(g *core.Graph, pairs [][2]string) error {
	if g == nil {
		return ErrGraphNil
	}
	// Validate every pair before touching the graph.
	for _, p := range pairs {
		ok, err := NodesCanBeMerged(g, p[0], p[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: (%q, %q)", ErrIneligibleMerge, p[0], p[1])
		}
	}

	for _, members := range components(pairs) {
		rep := members[0] // lexicographically smallest member
		for _, m := range members[1:] {
			if err := absorb(g, rep, m); err != nil {
				return err
			}
		}
	}

	return nil
}

// absorb re-homes every edge of member onto rep, merging collisions, then
// deletes member.
func absorb(g *core.Graph, rep, member string) error {
	outs, err := g.OutEdges(member)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, member)
	}
	for _, e := range outs {
		if mErr := mergeInto(g, rep, e.To, e.Label, e.Attrs); mErr != nil {
			return mErr
		}
	}
	ins, err := g.InEdges(member)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, member)
	}
	for _, e := range ins {
		if mErr := mergeInto(g, e.From, rep, e.Label, e.Attrs); mErr != nil {
			return mErr
		}
	}

	// RemoveNode drops the member's original edges along with it.
	if err = g.RemoveNode(member); err != nil {
		return fmt.Errorf("merge: removing absorbed node %q: %w", member, err)
	}

	return nil
}

// mergeInto adds the (from, to, label) edge with the given bundle, or
// merges the bundle into the already-present edge (existing edge first).
func mergeInto(g *core.Graph, from, to, label string, attrs core.AttrMap) error {
	if existing, err := g.Edge(from, to, label); err == nil {
		existing.Attrs = MergeEdgeData(existing.Attrs, attrs)

		return nil
	}
	if err := g.AddEdge(from, to, label, attrs); err != nil {
		return fmt.Errorf("merge: re-homing edge (%s,%s,%s): %w", from, to, label, err)
	}

	return nil
}

// MergeAndAddEdges re-homes all outgoing edges of old1 and old2 onto
// newNode (created if absent), applying the edge-merge rule whenever the
// redirected edges collide on (destination, label). old1 is processed
// first, then old2, each in deterministic edge order — so a collision
// keeps old1's probability.
//
// Returns one (source, destination, label) triple per absorbed source
// edge, in processing order, for verification by the caller.
func MergeAndAddEdges(g *core.Graph, newNode, old1, old2 string) ([]core.EdgeKey, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.AddNode(newNode); err != nil {
		return nil, fmt.Errorf("merge: creating %q: %w", newNode, err)
	}

	var absorbed []core.EdgeKey
	for _, old := range []string{old1, old2} {
		outs, err := g.OutEdges(old)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, old)
		}
		for _, e := range outs {
			if mErr := mergeInto(g, newNode, e.To, e.Label, e.Attrs); mErr != nil {
				return nil, mErr
			}
			absorbed = append(absorbed, e.Key())
			if rErr := g.RemoveEdge(e.From, e.To, e.Label); rErr != nil {
				return nil, fmt.Errorf("merge: detaching (%s,%s,%s): %w", e.From, e.To, e.Label, rErr)
			}
		}
	}

	return absorbed, nil
}

// components groups the nodes named in pairs into connected components
// using union-find with path compression and union by rank. Components are
// returned with sorted members, ordered by their smallest member.
func components(pairs [][2]string) [][]string {
	parent := make(map[string]string)
	rank := make(map[string]int)

	find := func(u string) string {
		for parent[u] != u {
			// Path compression: point u at its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		// Attach the smaller-rank tree under the larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	for _, p := range pairs {
		for _, id := range p {
			if _, seen := parent[id]; !seen {
				parent[id] = id
				rank[id] = 0
			}
		}
		union(p[0], p[1])
	}

	byRoot := make(map[string][]string)
	for id := range parent {
		root := find(id)
		byRoot[root] = append(byRoot[root], id)
	}
	out := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
