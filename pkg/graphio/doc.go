// Package graphio reads and writes graphs in the arcgraph wire formats.
//
// The canonical format is JSON with round-trip fidelity: a decoded graph
// answers every query identically to the graph that was encoded,
// regardless of which backend either side uses.
//
// Node weights are stored dense or sparse, whichever is smaller: when
// strictly more than half of the weights are zero only the non-zero
// (index, weight) entries are kept. Arcs drop their weights entirely when
// every weight is zero. Undirected graphs store each mirrored pair exactly
// once, as its from <= to direction.
//
//	{
//	  "directed": true,
//	  "nodes": {"count": 3, "dense": [1, 2, 3]},
//	  "arcs": {"weighted": [{"from": 0, "to": 1, "weight": 10}]}
//	}
//
// For hand-written input the package also loads TOML manifests, see
// [LoadManifest].
package graphio
