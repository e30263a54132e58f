package main

import (
	"github.com/advent-of-go/aoc"
	"golang.org/x/exp/maps"
)

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	total := 0
	s.d10Trailheads(func(ends map[aoc.Pt]int) {
		total += len(ends)
	})
	return total
}

// want=81
func (s solver) D10p2() any {
	total := 0
	s.d10Trailheads(func(ends map[aoc.Pt]int) {
		total += aoc.Sum(maps.Values(ends)...)
	})
	return total
}

// d10Trailheads calls f for each trailhead with the number of distinct
// hiking trails reaching each summit from it.
func (s solver) d10Trailheads(f func(ends map[aoc.Pt]int)) {
	g := s.Grid()
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != '0' {
			return
		}
		ends := map[aoc.Pt]int{}
		var st aoc.Stack[aoc.Pt]
		st.Push(p)
		st.While(func(cur aoc.Pt) bool {
			h := g.At(cur)
			if h == '9' {
				ends[cur]++
				return true
			}
			cur.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if v, ok := g.AtOk(n); ok && v == h+1 {
					st.Push(n)
				}
				return true
			})
			return true
		})
		f(ends)
	})
}
