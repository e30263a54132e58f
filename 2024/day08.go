package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	g := s.Grid()
	antinodes := map[aoc.Pt]bool{}
	d8Pairs(g, func(a, b aoc.Pt) {
		if p := b.Add(b.Sub(a)); g.In(p) {
			antinodes[p] = true
		}
	})
	return len(antinodes)
}

// want=34
func (s solver) D8p2() any {
	g := s.Grid()
	antinodes := map[aoc.Pt]bool{}
	d8Pairs(g, func(a, b aoc.Pt) {
		d := b.Sub(a)
		k := aoc.GCD(aoc.AbsDiff(d.X, 0), aoc.AbsDiff(d.Y, 0))
		d = aoc.Pt{X: d.X / k, Y: d.Y / k}
		for p := a; g.In(p); p = p.Add(d) {
			antinodes[p] = true
		}
	})
	return len(antinodes)
}

// d8Pairs calls f for every ordered pair of distinct antennas sharing a
// frequency.
func d8Pairs(g aoc.Grid[byte], f func(a, b aoc.Pt)) {
	byFreq := map[byte][]aoc.Pt{}
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != '.' && c != '#' {
			byFreq[c] = append(byFreq[c], p)
		}
	})
	for _, ps := range byFreq {
		for i, a := range ps {
			for j, b := range ps {
				if i != j {
					f(a, b)
				}
			}
		}
	}
}
