package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=37327623

1
10
100
2024
*/
func (s solver) D22p1() any {
	return aoc.ParallelMapFold(s.d22Seeds(), func(n int) int {
		for range 2000 {
			n = d22Next(n)
		}
		return n
	}, func(acc, v int) int {
		return acc + v
	}, 0)
}

/*
want=23

1
2
3
2024
*/
func (s solver) D22p2() any {
	total := map[[4]int]int{}
	for _, bananas := range aoc.Parallel(s.d22Seeds(), d22Bananas) {
		for k, v := range bananas {
			total[k] += v
		}
	}
	best := 0
	for _, v := range total {
		best = max(best, v)
	}
	return best
}

func (s solver) d22Seeds() []int {
	return aoc.IntsIn(s.Text())
}

func d22Next(n int) int {
	const prune = 1<<24 - 1
	n = (n<<6 ^ n) & prune
	n = (n>>5 ^ n) & prune
	n = (n<<11 ^ n) & prune
	return n
}

// d22Bananas returns, for every run of four price changes a buyer shows,
// the price at the first time that run occurs.
func d22Bananas(n int) map[[4]int]int {
	out := map[[4]int]int{}
	var changes [4]int
	price := n % 10
	for i := range 2000 {
		n = d22Next(n)
		p := n % 10
		changes = [4]int{changes[1], changes[2], changes[3], p - price}
		price = p
		if i < 3 {
			continue
		}
		if _, ok := out[changes]; !ok {
			out[changes] = p
		}
	}
	return out
}
