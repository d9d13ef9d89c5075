package graph

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrSizeMismatch is returned by [New] and [NewDense] when the node
	// weight slice does not have exactly nodeCount entries.
	ErrSizeMismatch = errors.New("node weight count does not match node count")

	// ErrArcNotFound is returned by [Graph.Arc] and [Graph.UpdateArc] when
	// the requested arc does not exist. UpdateArc never inserts.
	ErrArcNotFound = errors.New("arc not found")

	// ErrArcExists is returned by [Graph.InsertArc] when the arc is already
	// present. Use [Graph.UpdateArc] to change an existing weight.
	ErrArcExists = errors.New("arc already exists")
)

// Weight constrains node and arc weight types to Go's built-in numeric
// types. Every type satisfying Weight is closed under + and * and has the
// usual zero and one identities, so consumers (e.g. package pathcost) can
// do arithmetic on weights without further constraints.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Arc is a directed connection between two node indices.
// Undirected graphs store each connection as two mirrored arcs.
type Arc[W Weight] struct {
	From   int
	To     int
	Weight W
}

// store is the capability set a backend must provide. insert and update
// are unconditional storage writes; presence checks are the facade's job,
// which keeps the insert-vs-update distinction out of the backends.
type store[W Weight] interface {
	insert(from, to int, w W)
	update(from, to int, w W)
	arc(from, to int) (W, bool)
	neighbors(from int) iter.Seq2[int, W]
	arcs() iter.Seq[Arc[W]]
	arcCount() int
}

// Graph is a weighted graph over a fixed node set. Create one with [New]
// (adjacency list) or [NewDense] (adjacency matrix); the zero value is not
// usable. Graph owns its node weights and arc storage exclusively.
type Graph[W Weight] struct {
	directed bool
	nodes    []W
	store    store[W]
}

// New creates an adjacency-list graph with nodeCount nodes and the given
// initial node weights. Returns ErrSizeMismatch if len(nodeWeights) is not
// exactly nodeCount.
func New[W Weight](nodeCount int, directed bool, nodeWeights []W) (*Graph[W], error) {
	return build(nodeCount, directed, nodeWeights, newListStore[W](nodeCount))
}

// NewDense creates an adjacency-matrix graph with nodeCount nodes and the
// given initial node weights. The matrix allocates nodeCount² cells up
// front. Returns ErrSizeMismatch if len(nodeWeights) is not exactly
// nodeCount.
func NewDense[W Weight](nodeCount int, directed bool, nodeWeights []W) (*Graph[W], error) {
	return build(nodeCount, directed, nodeWeights, newMatrixStore[W](nodeCount))
}

func build[W Weight](nodeCount int, directed bool, nodeWeights []W, s store[W]) (*Graph[W], error) {
	if len(nodeWeights) != nodeCount {
		return nil, fmt.Errorf("%w: %d weights for %d nodes", ErrSizeMismatch, len(nodeWeights), nodeCount)
	}
	nodes := make([]W, nodeCount)
	copy(nodes, nodeWeights)
	return &Graph[W]{directed: directed, nodes: nodes, store: s}, nil
}

// NodeCount returns the fixed number of nodes N.
func (g *Graph[W]) NodeCount() int { return len(g.nodes) }

// Directed reports whether arcs are one-way.
func (g *Graph[W]) Directed() bool { return g.directed }

// ArcCount returns the number of stored arc entries. Undirected graphs
// store both directions, so each non-loop connection counts twice.
func (g *Graph[W]) ArcCount() int { return g.store.arcCount() }

// NodeWeight returns the weight of the given node.
func (g *Graph[W]) NodeWeight(node int) W { return g.nodes[node] }

// SetNodeWeight replaces the weight of the given node.
func (g *Graph[W]) SetNodeWeight(node int, w W) { g.nodes[node] = w }

// InsertArc adds the arc (from, to) with the given weight. Returns
// ErrArcExists if the arc is already present. Undirected graphs also
// write the mirror arc (to, from), after the primary direction; a
// self-loop gets a single entry.
func (g *Graph[W]) InsertArc(from, to int, w W) error {
	if _, ok := g.store.arc(from, to); ok {
		return fmt.Errorf("%w: %d->%d", ErrArcExists, from, to)
	}
	g.store.insert(from, to, w)
	if !g.directed && from != to {
		g.store.insert(to, from, w)
	}
	return nil
}

// UpdateArc replaces the weight of the existing arc (from, to). Returns
// ErrArcNotFound if the arc is absent; UpdateArc never inserts.
// Undirected graphs update the mirror arc with the same weight.
func (g *Graph[W]) UpdateArc(from, to int, w W) error {
	if _, ok := g.store.arc(from, to); !ok {
		return fmt.Errorf("%w: %d->%d", ErrArcNotFound, from, to)
	}
	g.store.update(from, to, w)
	if !g.directed && from != to {
		g.store.update(to, from, w)
	}
	return nil
}

// Arc returns the weight of the arc (from, to), or ErrArcNotFound.
func (g *Graph[W]) Arc(from, to int) (W, error) {
	w, ok := g.store.arc(from, to)
	if !ok {
		var zero W
		return zero, fmt.Errorf("%w: %d->%d", ErrArcNotFound, from, to)
	}
	return w, nil
}

// HasArc reports whether the arc (from, to) is present.
func (g *Graph[W]) HasArc(from, to int) bool {
	_, ok := g.store.arc(from, to)
	return ok
}

// Neighbors returns the out-arcs of node as a lazy (to, weight) sequence.
// The sequence is restartable and never mutates the graph. The adjacency
// list yields arcs in insertion order; the matrix scans the node's row in
// index order. Do not mutate the graph while ranging.
func (g *Graph[W]) Neighbors(node int) iter.Seq2[int, W] {
	return g.store.neighbors(node)
}

// Nodes returns all (index, weight) pairs in index order 0..N.
func (g *Graph[W]) Nodes() iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		for i, w := range g.nodes {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Arcs returns every stored arc in backend iteration order: nodes in
// index order, each node's arcs in its Neighbors order. Undirected graphs
// yield both directions of each pair.
func (g *Graph[W]) Arcs() iter.Seq[Arc[W]] {
	return g.store.arcs()
}

// UpdateEachNodeWeight replaces every node weight with f(index, weight).
func (g *Graph[W]) UpdateEachNodeWeight(f func(node int, w W) W) {
	for i, w := range g.nodes {
		g.nodes[i] = f(i, w)
	}
}

// UpdateEachArcWeight replaces every arc weight with f(from, to, weight).
// For undirected graphs f runs once per connection, on the from <= to
// direction, and the result is mirrored to keep the pair symmetric.
func (g *Graph[W]) UpdateEachArcWeight(f func(from, to int, w W) W) {
	for a := range g.store.arcs() {
		if !g.directed && a.From > a.To {
			continue
		}
		w := f(a.From, a.To, a.Weight)
		g.store.update(a.From, a.To, w)
		if !g.directed && a.From != a.To {
			g.store.update(a.To, a.From, w)
		}
	}
}
