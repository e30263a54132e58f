package main

import (
	"strings"

	"github.com/advent-of-go/aoc"
)

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return s.d11Blink(25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return s.d11Blink(75)
}

// d11Blink counts stones after n blinks. Stones with the same number
// always evolve alike, so only the count per number is tracked.
func (s solver) d11Blink(n int) int {
	stones := map[int]int{}
	for _, v := range aoc.Ints(strings.Fields(s.Text())...) {
		stones[v]++
	}
	for range n {
		next := make(map[int]int, len(stones))
		for v, c := range stones {
			switch {
			case v == 0:
				next[1] += c
			case aoc.NumDigits(v)%2 == 0:
				half := aoc.Pow10(aoc.NumDigits(v) / 2)
				next[v/half] += c
				next[v%half] += c
			default:
				next[v*2024] += c
			}
		}
		stones = next
	}
	total := 0
	for _, c := range stones {
		total += c
	}
	return total
}
