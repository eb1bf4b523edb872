// Package core: cloning and node renaming.
package core

// Clone returns a deep copy of the Graph: nodes (with stage and distance
// state), edges (with independent attribute maps), and the root/sink
// designations.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Stage: n.Stage, DistToSink: n.DistToSink}
	}
	for from, toMap := range g.out {
		for to, labels := range toMap {
			for label, e := range labels {
				ne := &Edge{From: from, To: to, Label: label, Attrs: e.Attrs.Clone()}
				clone.ensureAdj(clone.out, from, to)
				clone.out[from][to][label] = ne
				clone.ensureAdj(clone.in, to, from)
				clone.in[to][from][label] = ne
			}
		}
	}
	clone.root = g.root
	clone.sink = g.sink

	return clone
}

// RenameNode changes a node's ID from oldID to newID, re-homing every
// incident edge and carrying over the node's stage, distance, and any
// root/sink designation. Renaming to the current ID is a no-op.
//
// Returns ErrNodeNotFound if oldID is absent, ErrEmptyNodeID if newID is
// empty, and ErrNodeExists if newID is already taken.
// Complexity: O(deg(v)).
func (g *Graph) RenameNode(oldID, newID string) error {
	if newID == "" {
		return ErrEmptyNodeID
	}
	if oldID == newID {
		return nil
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	n, ok := g.nodes[oldID]
	if !ok {
		return ErrNodeNotFound
	}
	if _, taken := g.nodes[newID]; taken {
		return ErrNodeExists
	}

	// Re-home outgoing edges.
	for to, labels := range g.out[oldID] {
		for label, e := range labels {
			e.From = newID
			g.ensureAdj(g.out, newID, to)
			g.out[newID][to][label] = e
			g.in[to][newID] = ensureInner(g.in[to], newID)
			g.in[to][newID][label] = e
			delete(g.in[to], oldID)
		}
	}
	delete(g.out, oldID)

	// Re-home incoming edges.
	for from, labels := range g.in[oldID] {
		for label, e := range labels {
			e.To = newID
			g.ensureAdj(g.in, newID, from)
			g.in[newID][from][label] = e
			g.out[from][newID] = ensureInner(g.out[from], newID)
			g.out[from][newID][label] = e
			delete(g.out[from], oldID)
		}
	}
	delete(g.in, oldID)

	n.ID = newID
	g.nodes[newID] = n
	delete(g.nodes, oldID)

	if g.root == oldID {
		g.root = newID
	}
	if g.sink == oldID {
		g.sink = newID
	}

	return nil
}

// ensureInner returns m[key], allocating it when absent.
func ensureInner(m map[string]map[string]*Edge, key string) map[string]*Edge {
	if m[key] == nil {
		m[key] = make(map[string]*Edge)
	}

	return m[key]
}
