package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	return s.d12Price(d12Perimeter)
}

// want=1206
func (s solver) D12p2() any {
	return s.d12Price(d12Sides)
}

func (s solver) d12Price(fence func(map[aoc.Pt]bool) int) int {
	g := s.Grid()
	seen := map[aoc.Pt]bool{}
	total := 0
	g.ForEach(func(p aoc.Pt, _ byte) {
		if seen[p] {
			return
		}
		region := map[aoc.Pt]bool{}
		for _, q := range aoc.Region(g, p) {
			region[q] = true
			seen[q] = true
		}
		total += len(region) * fence(region)
	})
	return total
}

func d12Perimeter(region map[aoc.Pt]bool) int {
	n := 0
	for p := range region {
		for _, d := range aoc.Directions {
			if !region[p.Step(d)] {
				n++
			}
		}
	}
	return n
}

// d12Sides counts corners, which equals the number of straight sides.
func d12Sides(region map[aoc.Pt]bool) int {
	n := 0
	for p := range region {
		for _, d := range aoc.Directions {
			d2 := d.Turn(true)
			a, b := region[p.Step(d)], region[p.Step(d2)]
			switch {
			case !a && !b:
				n++
			case a && b && !region[p.Step(d).Step(d2)]:
				n++
			}
		}
	}
	return n
}
