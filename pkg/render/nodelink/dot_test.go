package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

func TestToDOTDirected(t *testing.T) {
	g, err := graph.New(4, true, make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	mustInsert(t, g, 0, 1, 1.5)
	mustInsert(t, g, 1, 2, 2.5)
	mustInsert(t, g, 3, 2, 11.5)
	mustInsert(t, g, 1, 0, -1.5)

	want := "digraph {\n" +
		"\tn0 [label=\"0\"];\n" +
		"\tn1 [label=\"0\"];\n" +
		"\tn2 [label=\"0\"];\n" +
		"\tn3 [label=\"0\"];\n" +
		"\tn0 -> n1 [label=\"1.5\"];\n" +
		"\tn1 -> n2 [label=\"2.5\"];\n" +
		"\tn1 -> n0 [label=\"-1.5\"];\n" +
		"\tn3 -> n2 [label=\"11.5\"];\n" +
		"}\n"
	if got := ToDOT(g); got != want {
		t.Errorf("ToDOT =\n%s\nwant:\n%s", got, want)
	}
}

func TestToDOTUndirected(t *testing.T) {
	g, err := graph.New(4, false, make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	mustInsert(t, g, 0, 1, 1.5)
	mustInsert(t, g, 1, 2, 2.5)
	mustInsert(t, g, 3, 2, 11.5)

	want := "graph {\n" +
		"\tn0 [label=\"0\"];\n" +
		"\tn1 [label=\"0\"];\n" +
		"\tn2 [label=\"0\"];\n" +
		"\tn3 [label=\"0\"];\n" +
		"\tn0 -- n1 [label=\"1.5\"];\n" +
		"\tn1 -- n2 [label=\"2.5\"];\n" +
		"\tn2 -- n3 [label=\"11.5\"];\n" +
		"}\n"
	if got := ToDOT(g); got != want {
		t.Errorf("ToDOT =\n%s\nwant:\n%s", got, want)
	}
}

func TestToDOTNodeWeightLabels(t *testing.T) {
	g, _ := graph.New(2, true, []int{7, 8})
	dot := ToDOT(g)

	for _, stmt := range []string{"n0 [label=\"7\"];", "n1 [label=\"8\"];"} {
		if !strings.Contains(dot, stmt) {
			t.Errorf("ToDOT missing %q in:\n%s", stmt, dot)
		}
	}
}

// The matrix backend must produce the same statements, ordered row-major.
func TestToDOTBackendEquivalence(t *testing.T) {
	build := func(construct func(int, bool, []float64) (*graph.Graph[float64], error)) *graph.Graph[float64] {
		g, err := construct(3, true, make([]float64, 3))
		if err != nil {
			t.Fatal(err)
		}
		mustInsert(t, g, 0, 1, 1)
		mustInsert(t, g, 1, 2, 2)
		return g
	}

	list := ToDOT(build(graph.New[float64]))
	dense := ToDOT(build(graph.NewDense[float64]))
	if list != dense {
		t.Errorf("list DOT:\n%s\nmatrix DOT:\n%s", list, dense)
	}
}

func TestToDOTIdempotent(t *testing.T) {
	g, _ := graph.New(3, false, []int{1, 2, 3})
	mustInsert(t, g, 0, 2, 9)

	if first, second := ToDOT(g), ToDOT(g); first != second {
		t.Errorf("repeated ToDOT differs:\n%s\nvs:\n%s", first, second)
	}
}

func mustInsert[W graph.Weight](t *testing.T, g *graph.Graph[W], from, to int, w W) {
	t.Helper()
	if err := g.InsertArc(from, to, w); err != nil {
		t.Fatalf("InsertArc(%d,%d): %v", from, to, err)
	}
}
