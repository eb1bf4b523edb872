// Package core: edge-level operations.
//
// Edge identity is the (from, to, label) triple; AddEdge rejects duplicate
// triples so that the pre-merge event tree keeps one edge per distinct
// transition. Accessors return deterministic, sorted results so downstream
// passes are reproducible.
package core

import "sort"

// AddEdge creates a new edge from→to with the given label and attribute
// bundle, auto-creating missing endpoint nodes (idempotent, like AddNode).
// attrs may be nil; the edge then starts with an empty bundle.
//
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, or ErrDuplicateEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to, label string, attrs AttrMap) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	// Ensure both endpoints exist (idempotent).
	if err := g.AddNode(from); err != nil {
		return err
	}
	if err := g.AddNode(to); err != nil {
		return err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, dup := g.out[from][to][label]; dup {
		return ErrDuplicateEdge
	}
	e := &Edge{From: from, To: to, Label: label, Attrs: attrs.Clone()}
	g.ensureAdj(g.out, from, to)
	g.out[from][to][label] = e
	g.ensureAdj(g.in, to, from)
	g.in[to][from][label] = e

	return nil
}

// RemoveEdge deletes the edge identified by (from, to, label).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to, label string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, ok := g.out[from][to][label]; !ok {
		return ErrEdgeNotFound
	}
	g.dropEdgeLocked(from, to, label)

	return nil
}

// HasEdge reports whether the exact (from, to, label) edge exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to, label string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.out[from][to][label]

	return ok
}

// HasEdgeBetween reports whether at least one edge from→to exists,
// regardless of label. Complexity: O(1).
func (g *Graph) HasEdgeBetween(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edge returns the edge identified by (from, to, label).
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) Edge(from, to, label string) (*Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.out[from][to][label]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// OutEdges returns all edges leaving id, sorted by (to, label) for
// determinism. Returns ErrNodeNotFound for unknown nodes.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if _, err := g.Node(id); err != nil {
		return nil, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return collectEdges(g.out[id], false), nil
}

// InEdges returns all edges entering id, sorted by (from, label) for
// determinism. Returns ErrNodeNotFound for unknown nodes.
// Complexity: O(d log d), d = in-degree.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	if _, err := g.Node(id); err != nil {
		return nil, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return collectEdges(g.in[id], true), nil
}

// Successors returns the sorted IDs of nodes directly reachable from id.
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) Successors(id string) ([]string, error) {
	if _, err := g.Node(id); err != nil {
		return nil, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	ids := make([]string, 0, len(g.out[id]))
	for to := range g.out[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Predecessors returns the sorted IDs of nodes with an edge into id.
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if _, err := g.Node(id); err != nil {
		return nil, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	ids := make([]string, 0, len(g.in[id]))
	for from := range g.in[id] {
		ids = append(ids, from)
	}
	sort.Strings(ids)

	return ids, nil
}

// OutDegree returns the number of edges leaving id (parallel edges count
// separately). Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) OutDegree(id string) (int, error) {
	if _, err := g.Node(id); err != nil {
		return 0, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	n := 0
	for _, labels := range g.out[id] {
		n += len(labels)
	}

	return n, nil
}

// InDegree returns the number of edges entering id (parallel edges count
// separately). Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) InDegree(id string) (int, error) {
	if _, err := g.Node(id); err != nil {
		return 0, err
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	n := 0
	for _, labels := range g.in[id] {
		n += len(labels)
	}

	return n, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by (from, to, label).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []*Edge
	for _, toMap := range g.out {
		for _, labels := range toMap {
			for _, e := range labels {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Label < out[j].Label
	})

	return out
}

// EdgeCount returns the total number of edges. Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	n := 0
	for _, toMap := range g.out {
		for _, labels := range toMap {
			n += len(labels)
		}
	}

	return n
}

// ensureAdj makes adj[a][b] non-nil.
func (g *Graph) ensureAdj(adj map[string]map[string]map[string]*Edge, a, b string) {
	if adj[a] == nil {
		adj[a] = make(map[string]map[string]*Edge)
	}
	if adj[a][b] == nil {
		adj[a][b] = make(map[string]*Edge)
	}
}

// collectEdges flattens one side of an adjacency index into a sorted slice.
// byFrom selects the sort key for the incoming index.
func collectEdges(side map[string]map[string]*Edge, byFrom bool) []*Edge {
	var out []*Edge
	for _, labels := range side {
		for _, e := range labels {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if byFrom {
			if a.From != b.From {
				return a.From < b.From
			}
		} else {
			if a.To != b.To {
				return a.To < b.To
			}
		}

		return a.Label < b.Label
	})

	return out
}
