package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=1

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	return d20Cheats(s.d20Track(), 2, s.d20Threshold())
}

// want=285
func (s solver) D20p2() any {
	return d20Cheats(s.d20Track(), 20, s.d20Threshold())
}

func (s solver) d20Threshold() int {
	if s.SampleMode {
		return 50
	}
	return 100
}

// d20Track returns the track cells in order from S to E.
func (s solver) d20Track() []aoc.Pt {
	g := s.Grid()
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start")
	}
	seen := map[aoc.Pt]bool{start: true}
	var track []aoc.Pt
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Pt) bool {
		track = append(track, p)
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if c, ok := g.AtOk(n); ok && c != '#' && !seen[n] {
				seen[n] = true
				q.Push(n)
			}
			return true
		})
		return true
	})
	return track
}

// d20Cheats counts the cheats of at most maxLen picoseconds that save at
// least threshold. The track is a single corridor, so a cell's index is
// its distance from the start.
func d20Cheats(track []aoc.Pt, maxLen, threshold int) int {
	count := 0
	for i, a := range track {
		for j := i + threshold; j < len(track); j++ {
			d := a.MDist(track[j])
			if d <= maxLen && j-i-d >= threshold {
				count++
			}
		}
	}
	return count
}
