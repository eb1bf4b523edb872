// Package ceg: leaf trimming.
package ceg

import (
	"fmt"

	"github.com/katalvlaran/cegraph/core"
)

// TrimLeaves repeatedly removes nodes with zero outgoing edges that are
// not the designated sink, together with all edges pointing at them, until
// none remain. Removing one dangling leaf can expose another, so the pass
// repeats; it terminates because the node count strictly decreases and is
// bounded below by the sink. The sink itself — the one legitimate node
// without outgoing edges — is never removed.
//
// Returns the number of removed nodes, or ErrGraphNil / ErrNoSink when
// the graph is nil or has no designated sink.
//
// Complexity: O(V · (V + E)) worst case (a chain of dangling leaves).
func TrimLeaves(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	sink := g.Sink()
	if sink == "" {
		return 0, ErrNoSink
	}

	removed := 0
	for {
		var dangling []string
		for _, id := range g.Nodes() {
			if id == sink {
				continue
			}
			deg, err := g.OutDegree(id)
			if err != nil {
				return removed, fmt.Errorf("ceg: out-degree of %q: %w", id, err)
			}
			if deg == 0 {
				dangling = append(dangling, id)
			}
		}
		if len(dangling) == 0 {
			return removed, nil
		}
		for _, id := range dangling {
			if err := g.RemoveNode(id); err != nil {
				return removed, fmt.Errorf("ceg: trimming leaf %q: %w", id, err)
			}
			removed++
		}
	}
}
