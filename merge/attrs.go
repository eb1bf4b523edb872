// Package merge: the edge-attribute merge rule.
package merge

import "github.com/katalvlaran/cegraph/core"

// MergeEdgeData combines the attribute bundles of two edges that collapsed
// into one.
//
// Contract:
//   - The output key set is the union of both input key sets.
//   - Every key except core.AttrProbability is summed, with a key missing
//     from one side read as zero (counts, priors and posteriors are
//     tallies, so parallel observations add).
//   - core.AttrProbability takes edge1's value: probability is a derived
//     ratio, not a tally, and summing it would corrupt the estimate. The
//     operand order therefore matters and is part of this contract —
//     callers pass the surviving (first-seen) edge first.
//
// Neither input is mutated. Complexity: O(|edge1| + |edge2|).
func MergeEdgeData(edge1, edge2 core.AttrMap) core.AttrMap {
	out := make(core.AttrMap, len(edge1)+len(edge2))
	for k, v := range edge1 {
		out[k] = v
	}
	for k, v := range edge2 {
		if k == core.AttrProbability {
			// First operand wins; present-but-zero when edge1 lacks it.
			out[k] = edge1.Get(k)
			continue
		}
		out[k] += v
	}

	return out
}
