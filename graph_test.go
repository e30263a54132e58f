package aoc

import (
	"slices"
	"testing"
)

func testGraph(edges ...string) *Graph[string] {
	g := &Graph[string]{}
	for _, e := range edges {
		g.AddEdge(e[:1], e[1:], 1)
	}
	return g
}

func TestTriangles(t *testing.T) {
	g := testGraph("ab", "bc", "ca", "cd", "db", "de")
	got := Triangles(g)
	slices.SortFunc(got, func(a, b [3]string) int {
		return slices.Compare(a[:], b[:])
	})
	want := [][3]string{{"a", "b", "c"}, {"b", "c", "d"}}
	if !slices.Equal(got, want) {
		t.Errorf("Triangles = %v, want %v", got, want)
	}
}

func TestMaxClique(t *testing.T) {
	tests := []struct {
		g    *Graph[string]
		want []string
		tie  bool // another clique of the same size exists
	}{
		{testGraph("ab", "bc", "ca", "cd", "db", "de"), []string{"a", "b", "c"}, true},
		{testGraph("ab", "ac", "ad", "bc", "bd", "cd", "de", "ef"), []string{"a", "b", "c", "d"}, false},
		{testGraph("ab"), []string{"a", "b"}, false},
	}
	for _, tt := range tests {
		got := MaxClique(tt.g)
		if len(got) != len(tt.want) || !tt.tie && !slices.Equal(got, tt.want) {
			t.Errorf("MaxClique = %v, want %v", got, tt.want)
		}
	}
}

func TestMaximalCliques(t *testing.T) {
	g := testGraph("ab", "bc", "ca", "cd")
	var got [][]string
	g.MaximalCliques(func(c []string) {
		c = slices.Clone(c)
		slices.Sort(c)
		got = append(got, c)
	})
	slices.SortFunc(got, func(a, b []string) int {
		return slices.Compare(a, b)
	})
	want := [][]string{{"a", "b", "c"}, {"c", "d"}}
	if len(got) != len(want) {
		t.Fatalf("MaximalCliques = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("MaximalCliques = %v, want %v", got, want)
		}
	}
}

func TestGraphClone(t *testing.T) {
	g := testGraph("ab")
	c := g.Clone()
	c.AddEdge("b", "c", 2)
	if g.HasEdge("b", "c") || !c.HasEdge("c", "b") {
		t.Errorf("Clone shares edges with the original")
	}
}
