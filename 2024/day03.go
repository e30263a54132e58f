package main

import (
	"regexp"

	"github.com/advent-of-go/aoc"
)

var d3Rx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

/*
want=161

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p1() any {
	return s.d3Sum(false)
}

// want=48
func (s solver) D3p2() any {
	return s.d3Sum(true)
}

func (s solver) d3Sum(conditional bool) int {
	enabled := true
	total := 0
	for _, m := range d3Rx.FindAllStringSubmatch(s.Text(), -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditional {
				total += aoc.Int(m[1]) * aoc.Int(m[2])
			}
		}
	}
	return total
}
