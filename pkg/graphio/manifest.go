package graphio

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

// Manifest is a hand-written graph description in TOML:
//
//	directed = true
//	nodes = 3
//	weights = [1.0, 2.0, 3.0]   # optional, defaults to all zeros
//
//	[[arcs]]
//	from = 0
//	to = 1
//	weight = 10.0
//
// Manifests always carry float64 weights; use the JSON format for other
// weight types.
type Manifest struct {
	Directed bool          `toml:"directed"`
	Nodes    int           `toml:"nodes"`
	Weights  []float64     `toml:"weights"`
	Arcs     []ManifestArc `toml:"arcs"`
}

// ManifestArc is one arc entry of a manifest.
type ManifestArc struct {
	From   int     `toml:"from"`
	To     int     `toml:"to"`
	Weight float64 `toml:"weight"`
}

// LoadManifest reads a TOML manifest and builds an adjacency-list graph.
func LoadManifest(path string) (*graph.Graph[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	g, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Build constructs the graph a manifest describes. An omitted weights
// list means all-zero node weights; a present one must have exactly one
// entry per node.
func (m Manifest) Build() (*graph.Graph[float64], error) {
	if m.Nodes < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrInvalidDocument, m.Nodes)
	}
	weights := m.Weights
	if weights == nil {
		weights = make([]float64, m.Nodes)
	}

	g, err := graph.New(m.Nodes, m.Directed, weights)
	if err != nil {
		return nil, err
	}

	inRange := func(i int) bool { return i >= 0 && i < m.Nodes }
	for _, a := range m.Arcs {
		if !inRange(a.From) || !inRange(a.To) {
			return nil, fmt.Errorf("%w: arc %d->%d references node outside [0,%d)", ErrInvalidDocument, a.From, a.To, m.Nodes)
		}
		if err := g.InsertArc(a.From, a.To, a.Weight); err != nil {
			return nil, fmt.Errorf("arc %d->%d: %w", a.From, a.To, err)
		}
	}
	return g, nil
}
