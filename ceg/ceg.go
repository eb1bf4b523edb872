// Package ceg: the Chain Event Graph orchestrator.
package ceg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cegraph/core"
	"github.com/katalvlaran/cegraph/distance"
	"github.com/katalvlaran/cegraph/merge"
)

// CEG wraps a staged event graph and turns it into a chain event graph.
//
// The input is typically eventtree.StagedTree.Graph(); a pre-populated
// core.Graph with stage attributes and designated root/sink works equally
// (used heavily in tests). The CEG mutates the graph in place during
// Generate and treats it as immutable once Stable.
type CEG struct {
	g     *core.Graph
	phase Phase
}

// New wraps g for generation. Returns ErrGraphNil for a nil graph.
func New(g *core.Graph) (*CEG, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &CEG{g: g, phase: PhaseUninitialized}, nil
}

// Graph returns the underlying multigraph: nodes, (source, destination,
// label) edge triples and their attribute bundles. After Generate it is
// the final CEG and must not be mutated.
func (c *CEG) Graph() *core.Graph {
	return c.g
}

// Phase reports the orchestrator's lifecycle state.
func (c *CEG) Phase() Phase {
	return c.phase
}

// Stages returns the partition of current node IDs by stage label, with
// unstaged nodes grouped under the empty label. Node lists are sorted.
// The partition invariant always holds:
// NodeCount == Σ len(stage) over all stages.
func (c *CEG) Stages() map[string][]string {
	out := make(map[string][]string)
	for _, id := range c.g.Nodes() {
		stage, err := c.g.Stage(id)
		if err != nil {
			continue // node vanished between Nodes() and here; single-threaded callers never see this
		}
		out[stage] = append(out[stage], id)
	}
	for _, ids := range out {
		sort.Strings(ids)
	}

	return out
}

// Generate runs the pipeline:
//
//  1. distances to sink (fails fast on malformed input — not a DAG, no
//     sink, multiple sink-like nodes);
//  2. generation-by-generation merging from the sink outward, re-running
//     until a full pass merges nothing;
//  3. leaf trimming;
//  4. canonical relabeling (root → w0, sink → winf, interior → w1..wN).
//
// Returns ErrAlreadyGenerated on re-invocation, ErrNoRoot/ErrNoSink for
// missing designations, ErrOptionViolation for bad options, any distance
// validation error, or a context error when cancelled. A merge that fails
// eligibility mid-pipeline aborts the whole run — no partial merge is
// ever applied.
func (c *CEG) Generate(opts ...Option) error {
	if c.phase != PhaseUninitialized {
		return fmt.Errorf("%w: phase %s", ErrAlreadyGenerated, c.phase)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if c.g.Root() == "" {
		return ErrNoRoot
	}
	if c.g.Sink() == "" {
		return ErrNoSink
	}

	// Uninitialized → DistancesComputed.
	if err := distance.UpdateDistancesToSink(c.g, distance.WithContext(o.ctx)); err != nil {
		return fmt.Errorf("ceg: %w", err)
	}
	c.phase = PhaseDistancesComputed

	// DistancesComputed → Merging.
	c.phase = PhaseMerging
	if err := c.mergeUntilStable(o); err != nil {
		return err
	}

	// Merging → Trimmed.
	if _, err := TrimLeaves(c.g); err != nil {
		return err
	}
	c.phase = PhaseTrimmed

	// Trimmed → Stable.
	if err := relabelNodes(c.g, o.prefix); err != nil {
		return err
	}
	c.phase = PhaseStable

	return nil
}

// mergeUntilStable repeats sink-to-root merge passes until one of them
// merges nothing. Distances are recomputed between passes; within a pass
// eligibility is evaluated live, never cached, because earlier merges
// change successor identities.
func (c *CEG) mergeUntilStable(o options) error {
	for {
		// Generation 0 is the sink alone; candidates start at distance 1.
		gens, err := distance.NodesWithIncreasingDistance(c.g, 1)
		if err != nil {
			return fmt.Errorf("ceg: %w", err)
		}
		merged := false
		for batch, ok := gens.Next(); ok; batch, ok = gens.Next() {
			select {
			case <-o.ctx.Done():
				return o.ctx.Err()
			default:
			}
			pairs, pErr := c.eligiblePairs(batch)
			if pErr != nil {
				return pErr
			}
			if len(pairs) == 0 {
				continue
			}
			if mErr := merge.MergeNodes(c.g, pairs); mErr != nil {
				return fmt.Errorf("ceg: %w", mErr)
			}
			merged = true
		}
		if !merged {
			return nil
		}
		// Structure changed; refresh distances before the next pass.
		if err = distance.UpdateDistancesToSink(c.g, distance.WithContext(o.ctx)); err != nil {
			return fmt.Errorf("ceg: %w", err)
		}
	}
}

// eligiblePairs collects the mergeable same-stage pairs within one
// generation batch. Unstaged nodes join no candidate set.
func (c *CEG) eligiblePairs(batch []string) ([][2]string, error) {
	byStage := make(map[string][]string)
	for _, id := range batch {
		stage, err := c.g.Stage(id)
		if err != nil || stage == "" {
			continue // already absorbed this pass, or unstaged
		}
		byStage[stage] = append(byStage[stage], id)
	}

	stages := make([]string, 0, len(byStage))
	for stage := range byStage {
		stages = append(stages, stage)
	}
	sort.Strings(stages)

	var pairs [][2]string
	for _, stage := range stages {
		members := byStage[stage] // sorted: batch order is sorted
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				ok, err := merge.NodesCanBeMerged(c.g, members[i], members[j])
				if err != nil {
					return nil, fmt.Errorf("ceg: %w", err)
				}
				if ok {
					pairs = append(pairs, [2]string{members[i], members[j]})
				}
			}
		}
	}

	return pairs, nil
}
