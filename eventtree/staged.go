package eventtree

import (
	"fmt"

	"github.com/katalvlaran/cegraph/core"
	"github.com/katalvlaran/cegraph/merge"
)

// StagedTree is an event tree whose situations have been partitioned
// into stages. Two situations in the same stage are asserted to share
// the same transition distribution; the stage labels are what later
// licenses node merging. It embeds the underlying tree, so all
// EventTree accessors remain available.
type StagedTree struct {
	*EventTree
}

// Staged wraps an event tree for stage assignment and probability
// propagation. The tree is shared, not copied.
func Staged(t *EventTree) *StagedTree {
	return &StagedTree{EventTree: t}
}

// SetStage assigns a situation to a stage. Leaves cannot be staged;
// they carry no transition behavior. An empty stage clears a previous
// assignment.
func (s *StagedTree) SetStage(id, stage string) error {
	d, err := s.g.OutDegree(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	if d == 0 && stage != "" {
		return fmt.Errorf("%w: %q", ErrLeafStage, id)
	}

	return s.g.SetStage(id, stage)
}

// SetStages assigns every situation listed under a stage label in one
// call. The first failing assignment aborts; earlier assignments stick.
func (s *StagedTree) SetStages(stages map[string][]string) error {
	for stage, ids := range stages {
		for _, id := range ids {
			if err := s.SetStage(id, stage); err != nil {
				return err
			}
		}
	}

	return nil
}

// ApplyPriors spreads a phantom sample of the given total mass down the
// tree and records, on every edge, the resulting "prior" together with
// the "posterior" (observed count plus prior). The mass entering a
// situation is split equally between its outgoing edges, and each edge's
// share flows on to its child.
func (s *StagedTree) ApplyPriors(total float64) error {
	if total <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadPrior, total)
	}
	mass := map[string]float64{s.Root(): total}
	// Creation order is root-first and parents precede children, so a
	// single forward pass visits every situation with its mass known.
	for _, id := range s.order {
		edges, err := s.g.OutEdges(id)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			continue
		}
		share := mass[id] / float64(len(edges))
		for _, e := range edges {
			e.Attrs[core.AttrPrior] = share
			e.Attrs[core.AttrPosterior] = e.Attrs.Get(core.AttrCount) + share
			mass[e.To] = share
		}
	}

	return nil
}

// ComputeProbabilities normalizes each situation's outgoing edges into a
// transition distribution stored under "probability". Posterior masses
// are used when ApplyPriors has run; raw counts otherwise. A situation
// whose masses sum to zero gets zero on every edge.
func (s *StagedTree) ComputeProbabilities() error {
	for _, id := range s.order {
		edges, err := s.g.OutEdges(id)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			continue
		}
		var denom float64
		for _, e := range edges {
			denom += edgeMass(e)
		}
		for _, e := range edges {
			if denom == 0 {
				e.Attrs[core.AttrProbability] = 0
				continue
			}
			e.Attrs[core.AttrProbability] = edgeMass(e) / denom
		}
	}

	return nil
}

func edgeMass(e *core.Edge) float64 {
	if e.Attrs.Has(core.AttrPosterior) {
		return e.Attrs.Get(core.AttrPosterior)
	}

	return e.Attrs.Get(core.AttrCount)
}

// Graph emits the staged tree as input for CEG generation: a deep copy
// of the tree in which every leaf is collapsed into a single designated
// sink. Leaf edges sharing a (source, label) pair fold together with the
// usual attribute merge. The root and sink designations are set, so the
// result feeds ceg.New directly.
func (s *StagedTree) Graph() (*core.Graph, error) {
	out := s.g.Clone()
	if err := out.AddNode(SinkID); err != nil {
		return nil, err
	}
	for _, leaf := range s.Leaves() {
		edges, err := out.InEdges(leaf)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if prev, perr := out.Edge(e.From, SinkID, e.Label); perr == nil {
				merged := merge.MergeEdgeData(prev.Attrs, e.Attrs)
				for k, v := range merged {
					prev.Attrs[k] = v
				}
				continue
			}
			if err = out.AddEdge(e.From, SinkID, e.Label, e.Attrs); err != nil {
				return nil, err
			}
		}
		if err = out.RemoveNode(leaf); err != nil {
			return nil, err
		}
	}
	if err := out.SetRoot(s.Root()); err != nil {
		return nil, err
	}
	if err := out.SetSink(SinkID); err != nil {
		return nil, err
	}

	return out, nil
}
