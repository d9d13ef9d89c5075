package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgraph/pkg/graphio"
	"github.com/matzehuels/arcgraph/pkg/render/nodelink"
)

func newConvertCmd() *cobra.Command {
	var output string
	var dense bool

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a graph file to JSON or DOT",
		Long: `Convert reads a graph from a JSON or TOML file and writes it in the
format implied by the output extension: .json for the wire format, .dot
for Graphviz source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			return runConvert(cmd, args[0], output, dense)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .dot)")
	cmd.Flags().BoolVar(&dense, "dense", false, "use the adjacency-matrix backend")

	return cmd
}

func runConvert(cmd *cobra.Command, input, output string, dense bool) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	g, err := loadGraph(input, dense)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".json":
		if err := graphio.WriteFile(g, output); err != nil {
			return err
		}
	case ".dot":
		if err := os.WriteFile(output, []byte(nodelink.ToDOT(g)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .json or .dot)", filepath.Ext(output))
	}

	p.done(fmt.Sprintf("Converted %s to %s", input, output))
	return nil
}
