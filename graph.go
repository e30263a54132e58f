package aoc

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
}

func (g *Graph[K]) HasEdge(a, b K) bool {
	_, ok := g.Edges[a][b]
	return ok
}

// Triangles returns every 3-clique of g once, each sorted ascending.
func Triangles[K cmp.Ordered](g *Graph[K]) [][3]K {
	var out [][3]K
	for a := range g.Nodes {
		for b := range g.Edges[a] {
			if b <= a {
				continue
			}
			for c := range g.Edges[b] {
				if c <= b || !g.HasEdge(a, c) {
					continue
				}
				out = append(out, [3]K{a, b, c})
			}
		}
	}
	return out
}

// MaximalCliques calls f with every maximal clique of g, using
// Bron-Kerbosch with pivoting. f must not retain the slice.
func (g *Graph[K]) MaximalCliques(f func(clique []K)) {
	p := maps.Clone(g.Nodes)
	g.bronKerbosch(nil, p, map[K]bool{}, f)
}

func (g *Graph[K]) bronKerbosch(r []K, p, x map[K]bool, f func([]K)) {
	if len(p) == 0 && len(x) == 0 {
		f(r)
		return
	}
	// Pivot on the vertex with the most neighbours in p.
	var pivot K
	best := -1
	for _, set := range []map[K]bool{p, x} {
		for u := range set {
			n := 0
			for v := range g.Edges[u] {
				if p[v] {
					n++
				}
			}
			if n > best {
				best, pivot = n, u
			}
		}
	}
	for _, v := range maps.Keys(p) {
		if g.HasEdge(pivot, v) {
			continue
		}
		np := map[K]bool{}
		nx := map[K]bool{}
		for n := range g.Edges[v] {
			if p[n] {
				np[n] = true
			}
			if x[n] {
				nx[n] = true
			}
		}
		g.bronKerbosch(append(slices.Clip(r), v), np, nx, f)
		delete(p, v)
		x[v] = true
	}
}

// MaxClique returns the largest clique of g, sorted.
func MaxClique[K cmp.Ordered](g *Graph[K]) []K {
	var best []K
	g.MaximalCliques(func(c []K) {
		if len(c) > len(best) {
			best = slices.Clone(c)
		}
	})
	slices.Sort(best)
	return best
}
