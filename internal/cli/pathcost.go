package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgraph/pkg/pathcost"
)

func newPathCostCmd() *cobra.Command {
	var dense, all bool

	cmd := &cobra.Command{
		Use:   "pathcost [file] [node...]",
		Short: "Compute the cost of a node path through a graph",
		Long: `Pathcost sums the arc weights along the given node path. With --all it
prints the cost of every forward sub-path instead of just the total.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePath(args[1:])
			if err != nil {
				return err
			}
			g, err := loadGraph(args[0], dense)
			if err != nil {
				return err
			}
			for _, n := range path {
				if n < 0 || n >= g.NodeCount() {
					return fmt.Errorf("node %d outside [0,%d)", n, g.NodeCount())
				}
			}

			if all {
				segments, err := pathcost.SubPaths(g, path)
				if err != nil {
					return err
				}
				for _, s := range segments {
					fmt.Fprintf(cmd.OutOrStdout(), "n%d -> n%d: %v\n", s.From, s.To, s.Cost)
				}
				return nil
			}

			total, err := pathcost.Cost(g, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dense, "dense", false, "use the adjacency-matrix backend")
	cmd.Flags().BoolVar(&all, "all", false, "print every forward sub-path cost")

	return cmd
}

// parsePath converts the positional node arguments to indices.
func parsePath(args []string) ([]int, error) {
	path := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("node %q is not an index", a)
		}
		path[i] = n
	}
	return path, nil
}
