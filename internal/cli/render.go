package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgraph/pkg/cache"
	"github.com/matzehuels/arcgraph/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; derived from the input when empty
	format  string // "dot", "svg" or "png"
	dense   bool   // use the adjacency-matrix backend
	noCache bool   // bypass the artifact cache
}

var renderFormats = map[string]bool{"dot": true, "svg": true, "png": true}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file to DOT, SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !renderFormats[opts.format] {
				return fmt.Errorf("unsupported format %q (want dot, svg or png)", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "use the adjacency-matrix backend")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	output := opts.output
	if output == "" {
		output = inferOutputPath(input, opts.format)
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	store, err := openCache(opts.noCache)
	if err != nil {
		return err
	}

	// The key covers the input bytes and every option that changes the
	// artifact.
	key := cache.Key("render", opts.format, opts.dense, raw)
	if artifact, ok, err := store.Get(key); err == nil && ok {
		logger.Debug("render cache hit", "key", key[:12])
		if err := os.WriteFile(output, artifact, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		p.done(fmt.Sprintf("Rendered %s (cached)", output))
		return nil
	}

	g, err := loadGraph(input, opts.dense)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "arcs", g.ArcCount(), "directed", g.Directed())

	dot := nodelink.ToDOT(g)
	var artifact []byte
	switch opts.format {
	case "dot":
		artifact = []byte(dot)
	case "svg":
		artifact, err = nodelink.RenderSVG(ctx, dot)
	case "png":
		artifact, err = nodelink.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if err := store.Set(key, artifact); err != nil {
		logger.Debug("cache store failed", "err", err)
	}
	if err := os.WriteFile(output, artifact, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	p.done(fmt.Sprintf("Rendered %s", output))
	return nil
}

// openCache returns the render artifact cache, or a no-op cache when
// disabled or when no user cache directory exists.
func openCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NullCache{}, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return cache.NullCache{}, nil
	}
	return cache.NewFileCache(filepath.Join(base, "arcgraph"))
}
