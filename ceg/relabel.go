// Package ceg: canonical node relabeling.
package ceg

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/cegraph/core"
)

// relabelNodes renames every node to the canonical scheme: the root
// becomes prefix+"0", the sink prefix+"inf", and every interior node gets
// a positional identifier prefix+"1".."N" assigned root-outward
// (decreasing distance to sink, ties broken by the pre-relabel ID). The
// scheme is deterministic for a given merge order, so downstream
// rendering is stable across runs.
//
// Renaming goes through reserved temporary IDs so that a final name
// colliding with a not-yet-renamed node (common when the input already
// uses the same prefix) cannot clash.
func relabelNodes(g *core.Graph, prefix string) error {
	root, sink := g.Root(), g.Sink()

	type ranked struct {
		id   string
		dist int
	}
	var interior []ranked
	for _, id := range g.Nodes() {
		if id == root || id == sink {
			continue
		}
		n, err := g.Node(id)
		if err != nil {
			return fmt.Errorf("ceg: relabel: %w", err)
		}
		interior = append(interior, ranked{id: id, dist: n.DistToSink})
	}
	sort.Slice(interior, func(i, j int) bool {
		if interior[i].dist != interior[j].dist {
			return interior[i].dist > interior[j].dist // root-outward
		}

		return interior[i].id < interior[j].id
	})

	final := make(map[string]string, len(interior)+2)
	final[root] = prefix + "0"
	final[sink] = prefix + sinkSuffix
	for i, r := range interior {
		final[r.id] = prefix + strconv.Itoa(i+1)
	}

	// Two-phase rename: old → reserved temporary → final.
	const reserved = "\x00ceg\x00"
	for old, name := range final {
		if err := g.RenameNode(old, reserved+name); err != nil {
			return fmt.Errorf("ceg: relabel %q: %w", old, err)
		}
	}
	for _, name := range final {
		if err := g.RenameNode(reserved+name, name); err != nil {
			return fmt.Errorf("ceg: relabel %q: %w", name, err)
		}
	}

	return nil
}
