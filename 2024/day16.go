package main

import (
	"math"

	"github.com/advent-of-go/aoc"
)

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	g, start, end := s.d16Maze()
	from := d16Dijkstra(g, []aoc.Path{{Pt: start, Dir: aoc.Right}}, false)
	return d16Best(from, end)
}

// want=45
func (s solver) D16p2() any {
	g, start, end := s.d16Maze()
	from := d16Dijkstra(g, []aoc.Path{{Pt: start, Dir: aoc.Right}}, false)
	best := d16Best(from, end)
	var ends []aoc.Path
	for _, d := range aoc.Directions {
		ends = append(ends, aoc.Path{Pt: end, Dir: d})
	}
	to := d16Dijkstra(g, ends, true)
	tiles := map[aoc.Pt]bool{}
	for st, c := range from {
		if rest, ok := to[st]; ok && c+rest == best {
			tiles[st.Pt] = true
		}
	}
	return len(tiles)
}

func (s solver) d16Maze() (g aoc.Grid[byte], start, end aoc.Pt) {
	g = s.Grid()
	start, _ = aoc.Find(g, 'S')
	end, _ = aoc.Find(g, 'E')
	return g, start, end
}

func d16Best(dist map[aoc.Path]int, end aoc.Pt) int {
	best := math.MaxInt
	for _, d := range aoc.Directions {
		if c, ok := dist[aoc.Path{Pt: end, Dir: d}]; ok {
			best = min(best, c)
		}
	}
	return best
}

// d16Dijkstra returns the cheapest score from any of starts to every
// reachable (tile, heading) state. Stepping costs 1 and turning 1000. With
// backwards set it walks the reversed graph, giving the cheapest score
// from each state to the starts.
func d16Dijkstra(g aoc.Grid[byte], starts []aoc.Path, backwards bool) map[aoc.Path]int {
	dist := map[aoc.Path]int{}
	items := map[aoc.Path]*aoc.PQI[aoc.Path]{}
	q := aoc.MinQueue[aoc.Path]()
	relax := func(p aoc.Path, c int) {
		dist[p] = c
		if it, ok := items[p]; ok && it.Index() >= 0 {
			it.P = c
			q.Update(it)
			return
		}
		items[p] = q.PushValue(p, c)
	}
	for _, st := range starts {
		relax(st, 0)
	}
	for q.Len() > 0 {
		it := q.Pop()
		cur := it.V
		stepDir := cur.Dir
		if backwards {
			stepDir = cur.Dir.Opposite()
		}
		next := []struct {
			p    aoc.Path
			cost int
		}{
			{aoc.Path{Pt: cur.Pt.Step(stepDir), Dir: cur.Dir}, 1},
			{aoc.Path{Pt: cur.Pt, Dir: cur.Dir.Turn(true)}, 1000},
			{aoc.Path{Pt: cur.Pt, Dir: cur.Dir.Turn(false)}, 1000},
		}
		for _, n := range next {
			if g.At(n.p.Pt) == '#' {
				continue
			}
			c := it.P + n.cost
			if old, ok := dist[n.p]; ok && old <= c {
				continue
			}
			relax(n.p, c)
		}
	}
	return dist
}
