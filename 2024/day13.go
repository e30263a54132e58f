package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func (s solver) D13p1() any {
	return s.d13Tokens(0, 100)
}

// want=875318608908
func (s solver) D13p2() any {
	return s.d13Tokens(10000000000000, -1)
}

// d13Tokens sums the cheapest win over every machine, with the prize moved
// by offset. maxPresses < 0 means no limit.
func (s solver) d13Tokens(offset, maxPresses int) int {
	total := 0
	for _, sec := range s.Sections() {
		n := aoc.IntsIn(sec)
		ax, ay, bx, by := n[0], n[1], n[2], n[3]
		px, py := n[4]+offset, n[5]+offset
		det := ax*by - ay*bx
		if det == 0 {
			continue
		}
		an, bn := px*by-py*bx, ax*py-ay*px
		if an%det != 0 || bn%det != 0 {
			continue
		}
		a, b := an/det, bn/det
		if a < 0 || b < 0 || maxPresses >= 0 && (a > maxPresses || b > maxPresses) {
			continue
		}
		total += 3*a + b
	}
	return total
}
