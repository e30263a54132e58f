package main

import (
	"slices"

	"github.com/advent-of-go/aoc"
)

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	left, right := s.d1Lists()
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// want=31
func (s solver) D1p2() any {
	left, right := s.d1Lists()
	counts := map[int]int{}
	for _, r := range right {
		counts[r]++
	}
	total := 0
	for _, l := range left {
		total += l * counts[l]
	}
	return total
}

func (s solver) d1Lists() (left, right []int) {
	s.ForLines(func(line string) {
		n := aoc.IntsIn(line)
		left = append(left, n[0])
		right = append(right, n[1])
	})
	return left, right
}
