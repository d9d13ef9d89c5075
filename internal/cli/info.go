package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

func newInfoCmd() *cobra.Command {
	var dense bool

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print a summary of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], dense)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summarize(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dense, "dense", false, "use the adjacency-matrix backend")

	return cmd
}

// summarize formats the graph header plus one line per node with its
// weight and out-arcs.
func summarize(g *graph.Graph[float64]) string {
	var b strings.Builder
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	fmt.Fprintf(&b, "%s graph, %d nodes, %d arcs\n", kind, g.NodeCount(), g.ArcCount())

	for i, w := range g.Nodes() {
		fmt.Fprintf(&b, "n%d weight=%v", i, w)
		first := true
		for to, aw := range g.Neighbors(i) {
			if first {
				b.WriteString(" ->")
				first = false
			}
			fmt.Fprintf(&b, " n%d(%v)", to, aw)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
