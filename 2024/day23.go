package main

import (
	"strings"

	"github.com/advent-of-go/aoc"
)

/*
want=7

kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
*/
func (s solver) D23p1() any {
	count := 0
	for _, t := range aoc.Triangles(s.d23Network()) {
		for _, n := range t {
			if strings.HasPrefix(n, "t") {
				count++
				break
			}
		}
	}
	return count
}

// want=co,de,ka,ta
func (s solver) D23p2() any {
	return strings.Join(aoc.MaxClique(s.d23Network()), ",")
}

func (s solver) d23Network() *aoc.Graph[string] {
	g := &aoc.Graph[string]{}
	s.ForLines(func(line string) {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			return
		}
		g.AddEdge(a, b, 1)
	})
	return g
}
