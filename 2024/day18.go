package main

import (
	"fmt"
	"sort"

	"github.com/advent-of-go/aoc"
)

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	size, fallen := s.d18Params()
	bytes := s.d18Bytes()
	return d18Escape(bytes[:fallen], size)
}

// want=6,1
func (s solver) D18p2() any {
	size, _ := s.d18Params()
	bytes := s.d18Bytes()
	n := sort.Search(len(bytes)+1, func(k int) bool {
		return d18Escape(bytes[:k], size) < 0
	})
	if n == 0 || n > len(bytes) {
		return "none"
	}
	b := bytes[n-1]
	return fmt.Sprintf("%d,%d", b.X, b.Y)
}

// d18Params returns the highest coordinate of the memory space and how
// many bytes fall before part 1 runs.
func (s solver) d18Params() (size, fallen int) {
	if s.SampleMode {
		return 6, 12
	}
	return 70, 1024
}

func (s solver) d18Bytes() []aoc.Pt {
	var out []aoc.Pt
	s.ForLines(func(line string) {
		n := aoc.IntsIn(line)
		out = append(out, aoc.Pt{X: n[0], Y: n[1]})
	})
	return out
}

// d18Escape returns the fewest steps from the top-left to the bottom-right
// corner avoiding corrupted cells, or -1 if there is no way through.
func d18Escape(corrupted []aoc.Pt, size int) int {
	g := aoc.MakeGrid[bool](size+1, size+1)
	for _, p := range corrupted {
		g.Set(p, true)
	}
	if g.At(aoc.Pt{}) {
		return -1
	}
	end := aoc.Pt{X: size, Y: size}
	dist := map[aoc.Pt]int{{}: 0}
	q := aoc.NewQueue(aoc.Pt{})
	found := -1
	q.While(func(p aoc.Pt) bool {
		if p == end {
			found = dist[p]
			return false
		}
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if blocked, ok := g.AtOk(n); ok && !blocked {
				if _, seen := dist[n]; !seen {
					dist[n] = dist[p] + 1
					q.Push(n)
				}
			}
			return true
		})
		return true
	})
	return found
}
