package aoc

import (
	"slices"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd", "", ""})
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Fatalf("Size = %v, want {2 2}", got)
	}
	if got := g.At(Pt{1, 0}); got != 'b' {
		t.Errorf("At(1,0) = %c, want b", got)
	}
	if got := Render(g); got != "ab\ncd\n" {
		t.Errorf("Render = %q", got)
	}
	if _, ok := g.AtOk(Pt{2, 0}); ok {
		t.Errorf("AtOk outside grid reported ok")
	}
}

func TestFind(t *testing.T) {
	g := ParseGrid([]string{"..#", ".S."})
	p, ok := Find(g, 'S')
	if !ok || p != (Pt{1, 1}) {
		t.Errorf("Find(S) = %v, %v; want {1 1}, true", p, ok)
	}
	if _, ok := Find(g, 'E'); ok {
		t.Errorf("Find(E) found a missing value")
	}
}

func TestCloneAndHash(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd"})
	c := g.Clone()
	if g.Hash() != c.Hash() {
		t.Fatalf("clone hashes differently")
	}
	c.Set(Pt{0, 0}, 'z')
	if g.At(Pt{0, 0}) != 'a' {
		t.Errorf("Clone shares rows with the original")
	}
	if g.Hash() == c.Hash() {
		t.Errorf("different grids hash the same")
	}
}

func TestRegion(t *testing.T) {
	g := ParseGrid([]string{
		"AAB",
		"ABB",
		"CCB",
	})
	tests := []struct {
		start Pt
		want  int
	}{
		{Pt{0, 0}, 3},
		{Pt{2, 0}, 4},
		{Pt{0, 2}, 2},
	}
	for _, tt := range tests {
		if got := Region(g, tt.start); len(got) != tt.want {
			t.Errorf("Region(%v) = %v, want %d cells", tt.start, got, tt.want)
		}
	}
}

func TestMove(t *testing.T) {
	g := MakeGrid[byte](3, 3)
	p, ok := g.Move(Path{Pt{1, 1}, Left})
	if !ok || p != (Path{Pt{0, 1}, Left}) {
		t.Errorf("Move = %v, %v", p, ok)
	}
	if _, ok := g.Move(p); ok {
		t.Errorf("Move off the grid reported ok")
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Turn(true).Turn(false) != d {
			t.Errorf("%v: right then left is %v", d, d.Turn(true).Turn(false))
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite twice is %v", d, d.Opposite().Opposite())
		}
		if got, ok := ParseDirection(d.String()[0]); !ok || got != d {
			t.Errorf("ParseDirection(%v) = %v, %v", d, got, ok)
		}
		if got := (Pt{}).Step(d).Step(d.Opposite()); got != (Pt{}) {
			t.Errorf("%v: step and back = %v", d, got)
		}
	}
	if Up.Turn(true) != Right || Up.Turn(false) != Left {
		t.Errorf("Up turns wrong")
	}
	if _, ok := ParseDirection('x'); ok {
		t.Errorf("ParseDirection(x) ok")
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{11, 7}
	tests := []struct {
		in, want Pt
	}{
		{Pt{3, 4}, Pt{3, 4}},
		{Pt{11, 7}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{10, 6}},
		{Pt{-23, 15}, Pt{10, 1}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	var all, immediate []Pt
	p := Pt{5, 5}
	p.ForNeighbors(func(n Pt) bool {
		all = append(all, n)
		return true
	})
	p.ForImmediateNeighbors(func(n Pt) bool {
		immediate = append(immediate, n)
		return true
	})
	if len(all) != 8 || len(immediate) != 4 {
		t.Fatalf("neighbors = %d, immediate = %d", len(all), len(immediate))
	}
	for _, n := range immediate {
		if p.MDist(n) != 1 || !slices.Contains(all, n) {
			t.Errorf("bad immediate neighbor %v", n)
		}
	}
}
