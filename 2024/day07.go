package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return s.d7Calibrate(false)
}

// want=11387
func (s solver) D7p2() any {
	return s.d7Calibrate(true)
}

func (s solver) d7Calibrate(concat bool) int {
	var eqs [][]int
	s.ForLines(func(line string) {
		eqs = append(eqs, aoc.IntsIn(line))
	})
	return aoc.ParallelMapFold(eqs, func(eq []int) int {
		if d7Solvable(eq[0], eq[1], eq[2:], concat) {
			return eq[0]
		}
		return 0
	}, func(acc, v int) int {
		return acc + v
	}, 0)
}

// d7Solvable reports whether some left-to-right chain of operators over
// rest, starting from acc, produces target.
func d7Solvable(target, acc int, rest []int, concat bool) bool {
	if len(rest) == 0 {
		return acc == target
	}
	if acc > target {
		return false
	}
	n := rest[0]
	return d7Solvable(target, acc+n, rest[1:], concat) ||
		d7Solvable(target, acc*n, rest[1:], concat) ||
		concat && d7Solvable(target, aoc.Concat(acc, n), rest[1:], concat)
}
