// Package distance: generation-batch iteration.
//
// A generation is the set of nodes sharing one distance-to-sink value.
// NodesWithIncreasingDistance walks generations outward from the sink so
// that merging can process a node only after all of its successors (which
// sit at strictly smaller distances) have reached their final identity.
package distance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cegraph/core"
)

// Generations is a finite, single-pass iterator over ordered batches of
// node IDs with increasing distance to the sink. It is backed by an index
// captured at construction time: later graph mutation neither grows nor
// shrinks the remaining batches, and the iterator is not restartable.
type Generations struct {
	batches [][]string // batches[k] = nodes at distance start+k, sorted
	next    int        // index of the next batch to yield
}

// NodesWithIncreasingDistance builds a generation iterator over g,
// beginning at the given distance. Batch k holds exactly the nodes whose
// DistToSink equals start+k, sorted by ID; batches are yielded in
// increasing distance order up to the maximum distance present.
//
// Returns ErrGraphNil, ErrNegativeStart, or ErrDistancesUnset when any
// node's distance has not been computed yet.
//
// Complexity: O(V log V) to build; Next is O(1).
func NodesWithIncreasingDistance(g *core.Graph, start int) (*Generations, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStart, start)
	}

	byDist := make(map[int][]string)
	maxDist := -1
	for _, id := range g.Nodes() {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("distance: node %q: %w", id, err)
		}
		if n.DistToSink == core.DistUnset {
			return nil, fmt.Errorf("%w: node %q", ErrDistancesUnset, id)
		}
		byDist[n.DistToSink] = append(byDist[n.DistToSink], id)
		if n.DistToSink > maxDist {
			maxDist = n.DistToSink
		}
	}

	var batches [][]string
	for d := start; d <= maxDist; d++ {
		batch := byDist[d] // may be empty for a sparse level
		sort.Strings(batch)
		batches = append(batches, batch)
	}

	return &Generations{batches: batches}, nil
}

// Next yields the next generation batch, or (nil, false) once exhausted.
func (it *Generations) Next() ([]string, bool) {
	if it.next >= len(it.batches) {
		return nil, false
	}
	batch := it.batches[it.next]
	it.next++

	return batch, true
}
