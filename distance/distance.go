// Package distance: longest-path-to-sink computation.
//
// UpdateDistancesToSink validates the single-sink DAG shape of its input
// before touching any node, then assigns every node the length of its
// longest directed path to the sink. The sink gets 0; every other node gets
// 1 + max over its direct successors. Max, not min: adding a shortcut edge
// straight to the sink must never shrink a node's recorded distance while a
// longer path remains.
package distance

import (
	"fmt"

	"github.com/katalvlaran/cegraph/core"
)

// DFS visitation states for cycle detection.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// UpdateDistancesToSink sets Node.DistToSink for every node of g to the
// length (edge count) of the longest directed path from that node to the
// designated sink.
//
// Fails fast, before any distance is written:
//   - ErrGraphNil          - g is nil.
//   - ErrNoSink            - no sink designated, designated sink absent,
//     the designated sink has outgoing edges, or no terminal node exists.
//   - ErrMultipleSinks     - more than one node has zero outgoing edges.
//   - ErrCycle             - g is not a DAG.
//   - context error        - the WithContext context was cancelled.
//
// Complexity: O(V + E) time, O(V) memory.
func UpdateDistancesToSink(g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes() // sorted node IDs for deterministic traversal
	if err := validateSingleSink(g, nodes); err != nil {
		return err
	}
	order, err := topologicalOrder(g, nodes, o)
	if err != nil {
		return err
	}

	// Walk the topological order from the back (sink first), so every
	// successor's distance is final before its predecessors read it.
	sink := g.Sink()
	dist := make(map[string]int, len(nodes))
	var id string
	for i := len(order) - 1; i >= 0; i-- {
		id = order[i]
		if id == sink {
			dist[id] = 0
			continue
		}
		succs, sErr := g.Successors(id)
		if sErr != nil {
			return fmt.Errorf("distance: successors of %q: %w", id, sErr)
		}
		longest := 0
		for _, s := range succs {
			if d := dist[s] + 1; d > longest {
				longest = d
			}
		}
		dist[id] = longest
	}

	// Validation passed; publish the distances onto the nodes.
	for id, d := range dist {
		n, nErr := g.Node(id)
		if nErr != nil {
			return fmt.Errorf("distance: node %q: %w", id, nErr)
		}
		n.DistToSink = d
	}

	return nil
}

// validateSingleSink enforces that exactly one node is terminal (zero
// outgoing edges) and that it is the designated sink.
func validateSingleSink(g *core.Graph, nodes []string) error {
	sink := g.Sink()
	if sink == "" || !g.HasNode(sink) {
		return ErrNoSink
	}

	var terminals []string
	for _, id := range nodes {
		deg, err := g.OutDegree(id)
		if err != nil {
			return fmt.Errorf("distance: out-degree of %q: %w", id, err)
		}
		if deg == 0 {
			terminals = append(terminals, id)
		}
	}
	switch {
	case len(terminals) == 0:
		return fmt.Errorf("%w: every node has outgoing edges", ErrNoSink)
	case len(terminals) > 1:
		return fmt.Errorf("%w: %v", ErrMultipleSinks, terminals)
	case terminals[0] != sink:
		return fmt.Errorf("%w: designated sink %q is not terminal (terminal node is %q)",
			ErrNoSink, sink, terminals[0])
	}

	return nil
}

// topoSorter encapsulates state for the cycle-detecting DFS.
type topoSorter struct {
	graph *core.Graph
	opts  options
	state map[string]int // white/gray/black
	order []string       // post-order sequence
}

// topologicalOrder returns the node IDs of g ordered so that for every
// edge u→v, u appears before v. Returns ErrCycle for non-DAG input.
func topologicalOrder(g *core.Graph, nodes []string, o options) ([]string, error) {
	sorter := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	for _, id := range nodes {
		if sorter.state[id] == white {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// Cancellation check at entry.
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// A gray node on the current path means a back-edge.
	if t.state[id] == gray {
		return fmt.Errorf("%w: back-edge into %q", ErrCycle, id)
	}
	if t.state[id] == black {
		return nil
	}
	t.state[id] = gray

	// Successors come back sorted, keeping DFS order reproducible.
	succs, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("distance: successors of %q: %w", id, err)
	}
	for _, s := range succs {
		if err = t.visit(s); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
