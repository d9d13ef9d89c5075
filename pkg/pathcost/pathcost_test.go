package pathcost

import (
	"errors"
	"testing"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

func ring(t *testing.T, construct func(int, bool, []float64) (*graph.Graph[float64], error)) *graph.Graph[float64] {
	t.Helper()
	g, err := construct(4, true, make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []struct {
		from, to int
		w        float64
	}{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 0, 4}} {
		if err := g.InsertArc(a.from, a.to, a.w); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestSubPaths(t *testing.T) {
	for _, tc := range []struct {
		name      string
		construct func(int, bool, []float64) (*graph.Graph[float64], error)
	}{
		{"List", graph.New[float64]},
		{"Matrix", graph.NewDense[float64]},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := ring(t, tc.construct)

			got, err := SubPaths(g, []int{0, 1, 2, 3})
			if err != nil {
				t.Fatalf("SubPaths: %v", err)
			}
			want := []Segment[float64]{
				{0, 1, 1}, {0, 2, 3}, {0, 3, 6},
				{1, 2, 2}, {1, 3, 5},
				{2, 3, 3},
			}
			if len(got) != len(want) {
				t.Fatalf("SubPaths = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestCost(t *testing.T) {
	g := ring(t, graph.New[float64])

	tests := []struct {
		name string
		path []int
		want float64
	}{
		{name: "FullRing", path: []int{0, 1, 2, 3, 0}, want: 10},
		{name: "TwoHops", path: []int{1, 2, 3}, want: 5},
		{name: "SingleNode", path: []int{2}, want: 0},
		{name: "Empty", path: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cost(g, tt.path)
			if err != nil {
				t.Fatalf("Cost: %v", err)
			}
			if got != tt.want {
				t.Errorf("Cost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingArc(t *testing.T) {
	g := ring(t, graph.New[float64])

	if _, err := Cost(g, []int{0, 2}); !errors.Is(err, graph.ErrArcNotFound) {
		t.Errorf("Cost err = %v, want ErrArcNotFound", err)
	}
	if _, err := SubPaths(g, []int{0, 1, 3}); !errors.Is(err, graph.ErrArcNotFound) {
		t.Errorf("SubPaths err = %v, want ErrArcNotFound", err)
	}
}
