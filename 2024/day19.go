package main

import (
	"strings"
)

/*
want=6

r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
*/
func (s solver) D19p1() any {
	possible := 0
	s.d19Designs(func(ways int) {
		if ways > 0 {
			possible++
		}
	})
	return possible
}

// want=16
func (s solver) D19p2() any {
	total := 0
	s.d19Designs(func(ways int) {
		total += ways
	})
	return total
}

// d19Designs calls f with the number of towel arrangements for each design.
func (s solver) d19Designs(f func(ways int)) {
	sections := s.Sections()
	towels := strings.Split(sections[0], ", ")
	for _, design := range strings.Split(sections[1], "\n") {
		if design == "" {
			continue
		}
		ways := make([]int, len(design)+1)
		ways[0] = 1
		for i := range design {
			if ways[i] == 0 {
				continue
			}
			for _, t := range towels {
				if strings.HasPrefix(design[i:], t) {
					ways[i+len(t)] += ways[i]
				}
			}
		}
		f(ways[len(design)])
	}
}
