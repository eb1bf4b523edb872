// Package core: Graph construction and node-level operations.
//
// The Graph stores edges in nested maps keyed from→to→label, with a mirror
// index keyed to→from→label for constant-time predecessor queries. Two
// RWMutex locks (muNode for nodes, muEdge for edges and both adjacency
// indexes) keep reads cheap and writes safe.
package core

import "sync"

// Graph is the in-memory staged event multigraph.
//
// It is always directed and always allows parallel edges (distinguished by
// label); self-loops are never allowed. The designated root and sink node
// identities are first-class graph state, set explicitly rather than
// inferred from node-name patterns.
type Graph struct {
	muNode sync.RWMutex // guards nodes, root, sink
	muEdge sync.RWMutex // guards out, in

	nodes map[string]*Node

	// out[from][to][label] and in[to][from][label] index the same *Edge.
	out map[string]map[string]map[string]*Edge
	in  map[string]map[string]map[string]*Edge

	root string // designated root node ID, "" until set
	sink string // designated sink node ID, "" until set
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string]map[string]map[string]*Edge),
		in:    make(map[string]map[string]map[string]*Edge),
	}
}

// AddNode inserts a new node with the given ID into the Graph.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}
	g.nodes[id] = &Node{ID: id, DistToSink: DistUnset}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns the node record for id.
// Returns ErrNodeNotFound if the node does not exist.
// The returned pointer is the live record; callers mutate Stage and
// DistToSink through it only while holding no concurrent readers.
func (g *Graph) Node(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// RemoveNode deletes the node and all incident edges from the graph.
// Clears the root/sink designation if the removed node held it.
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}
	// Drop outgoing edges and their mirror entries.
	for to, labels := range g.out[id] {
		for label := range labels {
			g.dropEdgeLocked(id, to, label)
		}
	}
	// Drop incoming edges and their mirror entries.
	for from, labels := range g.in[id] {
		for label := range labels {
			g.dropEdgeLocked(from, id, label)
		}
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)

	if g.root == id {
		g.root = ""
	}
	if g.sink == id {
		g.sink = ""
	}

	return nil
}

// SetStage assigns the stage label to the given node ("" clears it).
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) SetStage(id, stage string) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	g.muNode.Lock()
	n.Stage = stage
	g.muNode.Unlock()

	return nil
}

// Stage returns the stage label of the given node ("" when unstaged).
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) Stage(id string) (string, error) {
	n, err := g.Node(id)
	if err != nil {
		return "", err
	}

	return n.Stage, nil
}

// SetRoot designates id as the root node.
// Returns ErrNodeNotFound if the node does not exist.
func (g *Graph) SetRoot(id string) error {
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}
	g.muNode.Lock()
	g.root = id
	g.muNode.Unlock()

	return nil
}

// SetSink designates id as the sink node.
// Returns ErrNodeNotFound if the node does not exist.
func (g *Graph) SetSink(id string) error {
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}
	g.muNode.Lock()
	g.sink = id
	g.muNode.Unlock()

	return nil
}

// Root returns the designated root node ID, or "" when none is set.
func (g *Graph) Root() string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.root
}

// Sink returns the designated sink node ID, or "" when none is set.
func (g *Graph) Sink() string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.sink
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// dropEdgeLocked removes the (from,to,label) entry from both adjacency
// indexes, pruning emptied inner maps. Caller holds muEdge.
func (g *Graph) dropEdgeLocked(from, to, label string) {
	if m := g.out[from][to]; m != nil {
		delete(m, label)
		if len(m) == 0 {
			delete(g.out[from], to)
		}
	}
	if m := g.in[to][from]; m != nil {
		delete(m, label)
		if len(m) == 0 {
			delete(g.in[to], from)
		}
	}
}
