// Package nodelink renders graphs as Graphviz node-link diagrams.
//
// [ToDOT] walks a graph read-only and emits DOT source: one node
// statement per node in index order, one edge statement per arc in
// backend iteration order. Directed graphs use digraph/->, undirected
// graphs use graph/-- and emit each mirrored pair once.
//
// [RenderSVG] and [RenderPNG] turn DOT source into image bytes using the
// embedded Graphviz of goccy/go-graphviz; no system Graphviz install is
// needed.
package nodelink
