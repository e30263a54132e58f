package main

import (
	"slices"

	"github.com/advent-of-go/aoc"
)

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	safe := 0
	s.ForLines(func(line string) {
		if d2Safe(aoc.IntsIn(line)) {
			safe++
		}
	})
	return safe
}

// want=4
func (s solver) D2p2() any {
	safe := 0
	s.ForLines(func(line string) {
		if d2Tolerable(aoc.IntsIn(line)) {
			safe++
		}
	})
	return safe
}

// d2Safe reports whether levels strictly increase or decrease in steps of
// 1 to 3.
func d2Safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	inc := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !inc {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func d2Tolerable(levels []int) bool {
	if d2Safe(levels) {
		return true
	}
	for i := range levels {
		if d2Safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}
