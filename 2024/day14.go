package main

import (
	"github.com/advent-of-go/aoc"
	"tailscale.com/util/deephash"
)

type d14Robot struct {
	p, v aoc.Pt
}

/*
want=12

p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
*/
func (s solver) D14p1() any {
	size := s.d14Size()
	var quads [4]int
	mid := aoc.Pt{X: size.X / 2, Y: size.Y / 2}
	for _, r := range s.d14Robots() {
		p := d14At(r, size, 100)
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q++
		}
		if p.Y > mid.Y {
			q += 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3]
}

// want=105
func (s solver) D14p2() any {
	size := s.d14Size()
	robots := s.d14Robots()
	seen := map[deephash.Sum]bool{}
	for t := 101; ; t++ {
		floor := aoc.MakeGrid[int](size.X, size.Y)
		overlap := false
		for _, r := range robots {
			p := d14At(r, size, t)
			if floor.At(p) > 0 {
				overlap = true
			}
			floor.Set(p, floor.At(p)+1)
		}
		if !overlap {
			s.Debug("\n" + d14Picture(floor))
			return t
		}
		h := floor.Hash()
		if seen[h] {
			s.Debug("floor repeats at step ", t)
			return -1
		}
		seen[h] = true
	}
}

func (s solver) d14Size() aoc.Pt {
	if s.SampleMode {
		return aoc.Pt{X: 11, Y: 7}
	}
	return aoc.Pt{X: 101, Y: 103}
}

func (s solver) d14Robots() []d14Robot {
	var out []d14Robot
	s.ForLines(func(line string) {
		n := aoc.IntsIn(line)
		out = append(out, d14Robot{
			p: aoc.Pt{X: n[0], Y: n[1]},
			v: aoc.Pt{X: n[2], Y: n[3]},
		})
	})
	return out
}

// d14At returns where r is after t seconds on a wrapping floor.
func d14At(r d14Robot, size aoc.Pt, t int) aoc.Pt {
	return aoc.StandardizePt(aoc.Pt{X: r.p.X + r.v.X*t, Y: r.p.Y + r.v.Y*t}, size)
}

func d14Picture(floor aoc.Grid[int]) string {
	size := floor.Size()
	pic := aoc.MakeGrid[byte](size.X, size.Y)
	floor.ForEach(func(p aoc.Pt, n int) {
		c := byte('.')
		if n > 0 {
			c = '#'
		}
		pic.Set(p, c)
	})
	return aoc.Render(pic)
}
