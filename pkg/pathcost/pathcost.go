// Package pathcost computes the cost of node paths over a graph.
//
// A path is a slice of node indices; its cost is the sum of the weights
// of the consecutive arcs along it. This is the one place the library
// itself leans on the numeric contract of [graph.Weight]: weights are
// added, starting from the additive identity.
package pathcost

import (
	"fmt"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

// Segment is the cost of one sub-path: the total arc weight accumulated
// from node From to node To along the queried path.
type Segment[W graph.Weight] struct {
	From int
	To   int
	Cost W
}

// Cost returns the total weight of the consecutive arcs along path.
// A path with fewer than two nodes costs zero. Returns ErrArcNotFound
// (wrapped) if any required arc is missing.
func Cost[W graph.Weight](g *graph.Graph[W], path []int) (W, error) {
	var total W
	for i := 1; i < len(path); i++ {
		w, err := g.Arc(path[i-1], path[i])
		if err != nil {
			return total, fmt.Errorf("path segment %d: %w", i-1, err)
		}
		total += w
	}
	return total, nil
}

// SubPaths returns the cost of every forward sub-path of path, ordered by
// start position and then by end position. For path [a, b, c] that is
// a->b, a->c and b->c. Only the forward direction is produced, which matches
// directed graphs directly; for undirected graphs the reverse costs are
// the same by the mirror invariant.
//
// Runs in O(k²) arc lookups for a path of k nodes. Returns ErrArcNotFound
// (wrapped) if any arc along the path is missing.
func SubPaths[W graph.Weight](g *graph.Graph[W], path []int) ([]Segment[W], error) {
	if len(path) < 2 {
		return nil, nil
	}

	out := make([]Segment[W], 0, len(path)*(len(path)-1)/2)
	for i := 0; i < len(path)-1; i++ {
		var acc W
		for j := i + 1; j < len(path); j++ {
			w, err := g.Arc(path[j-1], path[j])
			if err != nil {
				return nil, fmt.Errorf("path segment %d: %w", j-1, err)
			}
			acc += w
			out = append(out, Segment[W]{From: path[i], To: path[j], Cost: acc})
		}
	}
	return out, nil
}
