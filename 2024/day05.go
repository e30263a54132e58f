package main

import (
	"slices"
	"strings"

	"github.com/advent-of-go/aoc"
)

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	rules, updates := s.d5Parse()
	total := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.cmp) {
			total += u[len(u)/2]
		}
	}
	return total
}

// want=123
func (s solver) D5p2() any {
	rules, updates := s.d5Parse()
	total := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.cmp) {
			continue
		}
		slices.SortFunc(u, rules.cmp)
		total += u[len(u)/2]
	}
	return total
}

// d5Rules holds the page pairs that must appear in the given order.
type d5Rules map[[2]int]bool

func (r d5Rules) cmp(a, b int) int {
	switch {
	case r[[2]int{a, b}]:
		return -1
	case r[[2]int{b, a}]:
		return 1
	}
	return 0
}

func (s solver) d5Parse() (d5Rules, [][]int) {
	sections := s.Sections()
	rules := d5Rules{}
	for _, line := range strings.Split(sections[0], "\n") {
		n := aoc.IntsIn(line)
		rules[[2]int{n[0], n[1]}] = true
	}
	var updates [][]int
	for _, line := range strings.Split(sections[1], "\n") {
		updates = append(updates, aoc.IntsIn(line))
	}
	return rules, updates
}
