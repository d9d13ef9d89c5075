package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

// ErrInvalidDocument is returned by [Document.Build], [Document.BuildDense]
// and [Manifest.Build] when decoded input cannot describe a graph, e.g. a
// negative node count or an out-of-range node index.
var ErrInvalidDocument = errors.New("invalid graph document")

// Document is the wire representation of a graph. Convert with
// [FromGraph] and [Document.Build] / [Document.BuildDense].
type Document[W graph.Weight] struct {
	Directed bool     `json:"directed"`
	Nodes    Nodes[W] `json:"nodes"`
	Arcs     Arcs[W]  `json:"arcs"`
}

// Nodes carries the node weights, exactly one of Dense or Sparse set
// (both empty for an all-zero weight vector).
type Nodes[W graph.Weight] struct {
	Count  int             `json:"count"`
	Dense  []W             `json:"dense,omitempty"`
	Sparse []NodeWeight[W] `json:"sparse,omitempty"`
}

// NodeWeight is one non-zero entry of a sparse weight vector.
type NodeWeight[W graph.Weight] struct {
	Node   int `json:"node"`
	Weight W   `json:"weight"`
}

// Arcs carries the arc set, at most one of Pairs or Weighted set.
// Pairs is the compact form used when every arc weight is zero.
type Arcs[W graph.Weight] struct {
	Pairs    [][2]int       `json:"pairs,omitempty"`
	Weighted []ArcWeight[W] `json:"weighted,omitempty"`
}

// ArcWeight is one weighted arc entry.
type ArcWeight[W graph.Weight] struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight W   `json:"weight"`
}

// FromGraph converts a graph to its wire representation, applying the
// dense/sparse and pairs/weighted encoding rules. Undirected pairs are
// emitted once, in their from <= to direction.
func FromGraph[W graph.Weight](g *graph.Graph[W]) Document[W] {
	return Document[W]{
		Directed: g.Directed(),
		Nodes:    encodeNodes(g),
		Arcs:     encodeArcs(g),
	}
}

func encodeNodes[W graph.Weight](g *graph.Graph[W]) Nodes[W] {
	var zero W
	count := g.NodeCount()

	zeros := 0
	for _, w := range g.Nodes() {
		if w == zero {
			zeros++
		}
	}

	out := Nodes[W]{Count: count}
	if 2*zeros > count+1 {
		for i, w := range g.Nodes() {
			if w != zero {
				out.Sparse = append(out.Sparse, NodeWeight[W]{Node: i, Weight: w})
			}
		}
		return out
	}
	out.Dense = make([]W, 0, count)
	for _, w := range g.Nodes() {
		out.Dense = append(out.Dense, w)
	}
	return out
}

func encodeArcs[W graph.Weight](g *graph.Graph[W]) Arcs[W] {
	var zero W
	var arcs []graph.Arc[W]
	allZero := true
	for a := range g.Arcs() {
		if !g.Directed() && a.From > a.To {
			continue
		}
		if a.Weight != zero {
			allZero = false
		}
		arcs = append(arcs, a)
	}

	var out Arcs[W]
	if allZero {
		for _, a := range arcs {
			out.Pairs = append(out.Pairs, [2]int{a.From, a.To})
		}
		return out
	}
	for _, a := range arcs {
		out.Weighted = append(out.Weighted, ArcWeight[W]{From: a.From, To: a.To, Weight: a.Weight})
	}
	return out
}

// Build reconstructs an adjacency-list graph from the document.
func (d Document[W]) Build() (*graph.Graph[W], error) {
	return d.build(graph.New[W])
}

// BuildDense reconstructs an adjacency-matrix graph from the document.
func (d Document[W]) BuildDense() (*graph.Graph[W], error) {
	return d.build(graph.NewDense[W])
}

func (d Document[W]) build(construct func(int, bool, []W) (*graph.Graph[W], error)) (*graph.Graph[W], error) {
	if d.Nodes.Count < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrInvalidDocument, d.Nodes.Count)
	}
	weights := make([]W, d.Nodes.Count)
	if d.Nodes.Dense != nil {
		if len(d.Nodes.Dense) != d.Nodes.Count {
			return nil, fmt.Errorf("%w: %d dense weights for %d nodes", graph.ErrSizeMismatch, len(d.Nodes.Dense), d.Nodes.Count)
		}
		copy(weights, d.Nodes.Dense)
	}
	for _, nw := range d.Nodes.Sparse {
		if nw.Node < 0 || nw.Node >= d.Nodes.Count {
			return nil, fmt.Errorf("%w: sparse weight for node %d outside [0,%d)", ErrInvalidDocument, nw.Node, d.Nodes.Count)
		}
		weights[nw.Node] = nw.Weight
	}

	g, err := construct(d.Nodes.Count, d.Directed, weights)
	if err != nil {
		return nil, err
	}

	// The graph itself trusts indices, so a decoder working on untrusted
	// bytes has to check them first.
	inRange := func(i int) bool { return i >= 0 && i < d.Nodes.Count }

	var zero W
	for _, p := range d.Arcs.Pairs {
		if !inRange(p[0]) || !inRange(p[1]) {
			return nil, fmt.Errorf("%w: arc %d->%d references node outside [0,%d)", ErrInvalidDocument, p[0], p[1], d.Nodes.Count)
		}
		if err := g.InsertArc(p[0], p[1], zero); err != nil {
			return nil, fmt.Errorf("arc %d->%d: %w", p[0], p[1], err)
		}
	}
	for _, a := range d.Arcs.Weighted {
		if !inRange(a.From) || !inRange(a.To) {
			return nil, fmt.Errorf("%w: arc %d->%d references node outside [0,%d)", ErrInvalidDocument, a.From, a.To, d.Nodes.Count)
		}
		if err := g.InsertArc(a.From, a.To, a.Weight); err != nil {
			return nil, fmt.Errorf("arc %d->%d: %w", a.From, a.To, err)
		}
	}
	return g, nil
}

// Marshal encodes a graph as indented JSON.
func Marshal[W graph.Weight](g *graph.Graph[W]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON into a wire document. Call [Document.Build] or
// [Document.BuildDense] to pick the backend.
func Unmarshal[W graph.Weight](data []byte) (Document[W], error) {
	var d Document[W]
	if err := json.Unmarshal(data, &d); err != nil {
		return Document[W]{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// Write encodes a graph as indented JSON to w.
func Write[W graph.Weight](g *graph.Graph[W], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph from r into an adjacency-list graph.
func Read[W graph.Weight](r io.Reader) (*graph.Graph[W], error) {
	var d Document[W]
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d.Build()
}

// WriteFile writes a graph to a JSON file with 0644 permissions.
func WriteFile[W graph.Weight](g *graph.Graph[W], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a JSON file into an adjacency-list graph.
func ReadFile[W graph.Weight](path string) (*graph.Graph[W], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read[W](f)
}
