package eventtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cegraph/core"
)

// pathSep joins category lists into map keys; it must not occur inside a
// category label, so a control byte is used.
const pathSep = "\x1f"

// EventTree is a rooted tree of situations built from observed event
// paths. The root is always "s0"; every distinct path receives the next
// ordinal in first-appearance order, and the edge into it carries the
// path's final category as its label and the observation tally in its
// "count" attribute.
type EventTree struct {
	g     *core.Graph
	order []string          // node IDs in creation order, root first
	node  map[string]string // path key -> node ID
}

// New builds an event tree from explicit path counts. Paths must arrive
// prefix-first: the parent of ("a","b") is the node created for ("a"),
// which must already exist. FromRows produces input in this order
// automatically.
func New(paths []PathCount) (*EventTree, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	t := &EventTree{
		g:     core.NewGraph(),
		order: make([]string, 0, len(paths)+1),
		node:  make(map[string]string, len(paths)+1),
	}
	root := nodePrefix + "0"
	if err := t.g.AddNode(root); err != nil {
		return nil, err
	}
	t.order = append(t.order, root)
	t.node[""] = root

	for i, pc := range paths {
		if len(pc.Path) == 0 {
			return nil, fmt.Errorf("path %d: %w", i, ErrEmptyPath)
		}
		if pc.Count <= 0 {
			return nil, fmt.Errorf("path %d (%v): %w", i, pc.Path, ErrBadCount)
		}
		key := strings.Join(pc.Path, pathSep)
		if _, ok := t.node[key]; ok {
			return nil, fmt.Errorf("path %v: %w", pc.Path, ErrDuplicatePath)
		}
		parentKey := strings.Join(pc.Path[:len(pc.Path)-1], pathSep)
		parent, ok := t.node[parentKey]
		if !ok {
			return nil, fmt.Errorf("path %v: %w", pc.Path, ErrOrphanPath)
		}
		id := nodePrefix + strconv.Itoa(len(t.order))
		t.node[key] = id
		t.order = append(t.order, id)
		label := pc.Path[len(pc.Path)-1]
		attrs := core.AttrMap{core.AttrCount: float64(pc.Count)}
		if err := t.g.AddEdge(parent, id, label, attrs); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromRows tallies raw observation rows into path counts and builds the
// tree. Each row is one sampled unit's category per variable; every
// prefix of a row contributes one observation to that prefix's path.
func FromRows(rows [][]string) (*EventTree, error) {
	if len(rows) == 0 {
		return nil, ErrNoPaths
	}
	counts := make(map[string]*PathCount)
	var order []string
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrEmptyPath)
		}
		for j := 1; j <= len(row); j++ {
			key := strings.Join(row[:j], pathSep)
			pc, ok := counts[key]
			if !ok {
				pc = &PathCount{Path: append([]string(nil), row[:j]...)}
				counts[key] = pc
				order = append(order, key)
			}
			pc.Count++
		}
	}
	paths := make([]PathCount, 0, len(order))
	for _, key := range order {
		paths = append(paths, *counts[key])
	}
	return New(paths)
}

// Root returns the identifier of the root situation.
func (t *EventTree) Root() string { return t.order[0] }

// Len reports the number of nodes in the tree, root included.
func (t *EventTree) Len() int { return len(t.order) }

// Situations lists the non-terminal nodes in creation order. These are
// the nodes eligible for stage assignment.
func (t *EventTree) Situations() []string {
	out := make([]string, 0, len(t.order))
	for _, id := range t.order {
		if d, _ := t.g.OutDegree(id); d > 0 {
			out = append(out, id)
		}
	}
	return out
}

// Leaves lists the terminal nodes in creation order.
func (t *EventTree) Leaves() []string {
	out := make([]string, 0, len(t.order))
	for _, id := range t.order {
		if d, _ := t.g.OutDegree(id); d == 0 {
			out = append(out, id)
		}
	}
	return out
}

// NodeForPath resolves a category path to its node identifier. The empty
// path names the root.
func (t *EventTree) NodeForPath(path ...string) (string, error) {
	id, ok := t.node[strings.Join(path, pathSep)]
	if !ok {
		return "", fmt.Errorf("path %v: %w", path, ErrUnknownNode)
	}
	return id, nil
}

// EdgeAttrs returns a copy of the attribute bundle on the (from, to,
// label) edge: the observation count plus whatever staging passes have
// written (prior, posterior, probability).
func (t *EventTree) EdgeAttrs(from, to, label string) (core.AttrMap, error) {
	e, err := t.g.Edge(from, to, label)
	if err != nil {
		return nil, err
	}

	return e.Attrs.Clone(), nil
}

// EdgeCounts returns the observation tally of every edge, keyed by the
// full (from, to, label) identity.
func (t *EventTree) EdgeCounts() map[core.EdgeKey]int {
	out := make(map[core.EdgeKey]int)
	for _, e := range t.g.Edges() {
		out[e.Key()] = int(e.Attrs.Get(core.AttrCount))
	}
	return out
}

// Edges returns every edge identity sorted by source, destination and
// label.
func (t *EventTree) Edges() []core.EdgeKey {
	es := t.g.Edges()
	out := make([]core.EdgeKey, len(es))
	for i, e := range es {
		out[i] = e.Key()
	}
	return out
}
