package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/arcgraph/pkg/graph"
	"github.com/matzehuels/arcgraph/pkg/graphio"
)

func writeTestGraph(t *testing.T, name string) string {
	t.Helper()
	g, err := graph.New(3, true, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.InsertArc(0, 1, 10); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := graphio.WriteFile(g, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGraphJSON(t *testing.T) {
	path := writeTestGraph(t, "g.json")

	for _, dense := range []bool{false, true} {
		g, err := loadGraph(path, dense)
		if err != nil {
			t.Fatalf("loadGraph(dense=%v): %v", dense, err)
		}
		if g.NodeCount() != 3 || !g.Directed() {
			t.Errorf("loaded %d-node directed=%v graph, want 3 directed", g.NodeCount(), g.Directed())
		}
		if w, err := g.Arc(0, 1); err != nil || w != 10 {
			t.Errorf("Arc(0,1) = %v, %v; want 10, nil", w, err)
		}
	}
}

func TestLoadGraphTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.toml")
	manifest := "directed = false\nnodes = 2\n\n[[arcs]]\nfrom = 0\nto = 1\nweight = 2.5\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, dense := range []bool{false, true} {
		g, err := loadGraph(path, dense)
		if err != nil {
			t.Fatalf("loadGraph(dense=%v): %v", dense, err)
		}
		// Undirected manifests produce mirrored arcs on either backend.
		for _, q := range [][2]int{{0, 1}, {1, 0}} {
			if w, err := g.Arc(q[0], q[1]); err != nil || w != 2.5 {
				t.Errorf("Arc(%d,%d) = %v, %v; want 2.5, nil", q[0], q[1], w, err)
			}
		}
	}
}

func TestLoadGraphUnsupportedExtension(t *testing.T) {
	if _, err := loadGraph("graph.yaml", false); err == nil {
		t.Error("loadGraph accepted a .yaml file")
	}
}

func TestInferOutputPath(t *testing.T) {
	tests := []struct {
		input, format, want string
	}{
		{"graph.toml", "svg", "graph.svg"},
		{"dir/graph.json", "png", "dir/graph.png"},
		{"noext", "dot", "noext.dot"},
	}
	for _, tt := range tests {
		if got := inferOutputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("inferOutputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	g, _ := graph.New(3, true, []float64{1, 2, 3})
	_ = g.InsertArc(0, 1, 10)
	_ = g.InsertArc(0, 2, 20)

	want := "directed graph, 3 nodes, 2 arcs\n" +
		"n0 weight=1 -> n1(10) n2(20)\n" +
		"n1 weight=2\n" +
		"n2 weight=3\n"
	if got := summarize(g); got != want {
		t.Errorf("summarize =\n%s\nwant:\n%s", got, want)
	}
}

func TestParsePath(t *testing.T) {
	got, err := parsePath([]string{"0", "2", "1"})
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	want := []int{0, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parsePath = %v, want %v", got, want)
		}
	}

	if _, err := parsePath([]string{"0", "x"}); err == nil {
		t.Error("parsePath accepted a non-numeric node")
	}
}
