package main

import (
	"github.com/advent-of-go/aoc"
	"golang.org/x/exp/maps"
)

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	g, start := s.d6Lab()
	visited, _ := d6Patrol(g, start, aoc.Pt{X: -1, Y: -1})
	return len(visited)
}

// want=6
func (s solver) D6p2() any {
	g, start := s.d6Lab()
	visited, _ := d6Patrol(g, start, aoc.Pt{X: -1, Y: -1})
	delete(visited, start)
	loops := aoc.Parallel(maps.Keys(visited), func(block aoc.Pt) bool {
		_, loop := d6Patrol(g, start, block)
		return loop
	})
	count := 0
	for _, l := range loops {
		if l {
			count++
		}
	}
	return count
}

func (s solver) d6Lab() (aoc.Grid[byte], aoc.Pt) {
	g := s.Grid()
	start, ok := aoc.Find(g, '^')
	if !ok {
		panic("no guard")
	}
	return g, start
}

// d6Patrol walks the guard from start, treating block as an extra
// obstruction. It returns the cells visited and whether the guard loops.
func d6Patrol(g aoc.Grid[byte], start, block aoc.Pt) (map[aoc.Pt]bool, bool) {
	cur := aoc.Path{Pt: start, Dir: aoc.Up}
	seen := map[aoc.Path]bool{}
	visited := map[aoc.Pt]bool{}
	for {
		if seen[cur] {
			return visited, true
		}
		seen[cur] = true
		visited[cur.Pt] = true
		next, ok := g.Move(cur)
		if !ok {
			return visited, false
		}
		if g.At(next.Pt) == '#' || next.Pt == block {
			cur.Dir = cur.Dir.Turn(true)
			continue
		}
		cur = next
	}
}
