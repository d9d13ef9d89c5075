package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/arcgraph/pkg/graph"
	"github.com/matzehuels/arcgraph/pkg/graphio"
)

// loadGraph reads a graph file, picking the parser by extension: .json
// for the wire format, .toml for manifests. With dense set the graph is
// built on the matrix backend.
func loadGraph(path string, dense bool) (*graph.Graph[float64], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		doc, err := graphio.Unmarshal[float64](data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if dense {
			return doc.BuildDense()
		}
		return doc.Build()
	case ".toml":
		g, err := graphio.LoadManifest(path)
		if err != nil {
			return nil, err
		}
		if dense {
			// Manifests always build the list backend; re-encode to move
			// the same arcs onto the matrix.
			return graphio.FromGraph(g).BuildDense()
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .json or .toml)", filepath.Ext(path))
	}
}

// inferOutputPath swaps the input file's extension for the output format,
// e.g. graph.toml + svg -> graph.svg.
func inferOutputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
