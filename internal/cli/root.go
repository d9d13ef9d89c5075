// Package cli implements the arcgraph command-line interface.
//
// Commands:
//   - render: turn a graph file into DOT, SVG or PNG output
//   - convert: rewrite a graph file into another format
//   - info: print a summary of a graph file
//   - pathcost: compute the cost of a node path through a graph
//
// Graph files are JSON documents (pkg/graphio wire format) or TOML
// manifests, selected by file extension. All commands support --verbose
// (-v) for debug-level logging; the logger travels in the command
// context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the information shown by --version. Called by main with
// values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the arcgraph CLI under ctx and returns the first command
// error.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "arcgraph",
		Short:        "arcgraph stores and renders weighted graphs",
		Long:         `arcgraph is a CLI around the arcgraph graph storage library: it loads weighted graphs from JSON or TOML files and renders, converts or queries them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("arcgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newPathCostCmd())

	return root.ExecuteContext(ctx)
}
