package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

// ToDOT converts a graph to Graphviz DOT source. Nodes are labelled with
// their weight, arcs with theirs. The traversal is read-only; calling
// ToDOT twice yields identical output.
func ToDOT[W graph.Weight](g *graph.Graph[W]) string {
	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	buf.WriteString(keyword)
	buf.WriteString(" {\n")

	for i, w := range g.Nodes() {
		fmt.Fprintf(&buf, "\tn%d [label=\"%v\"];\n", i, w)
	}
	for a := range g.Arcs() {
		// Undirected storage holds both directions; emit each pair once.
		if !g.Directed() && a.From > a.To {
			continue
		}
		fmt.Fprintf(&buf, "\tn%d %s n%d [label=\"%v\"];\n", a.From, arrow, a.To, a.Weight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
