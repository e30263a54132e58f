package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	g := s.Grid()
	count := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != 'X' {
			return
		}
		p.ForNeighbors(func(n aoc.Pt) bool {
			d := n.Sub(p)
			q := p
			for _, want := range []byte("MAS") {
				q = q.Add(d)
				if v, ok := g.AtOk(q); !ok || v != want {
					return true
				}
			}
			count++
			return true
		})
	})
	return count
}

// want=9
func (s solver) D4p2() any {
	g := s.Grid()
	count := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != 'A' {
			return
		}
		diag := func(a, b aoc.Pt) bool {
			x, ok1 := g.AtOk(p.Add(a))
			y, ok2 := g.AtOk(p.Add(b))
			return ok1 && ok2 && (x == 'M' && y == 'S' || x == 'S' && y == 'M')
		}
		if diag(aoc.Pt{X: -1, Y: -1}, aoc.Pt{X: 1, Y: 1}) && diag(aoc.Pt{X: 1, Y: -1}, aoc.Pt{X: -1, Y: 1}) {
			count++
		}
	})
	return count
}
