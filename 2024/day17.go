package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/advent-of-go/aoc"
)

/*
want=5,7,3,0

Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
*/
func (s solver) D17p1() any {
	c := s.d17Computer()
	var out []string
	for _, v := range c.run(c.a) {
		out = append(out, strconv.Itoa(v))
	}
	return strings.Join(out, ",")
}

// want=117440
func (s solver) D17p2() any {
	c := s.d17Computer()
	a, ok := c.quine(0, len(c.program)-1)
	if !ok {
		return -1
	}
	return a
}

type d17Computer struct {
	a, b, c int
	program []int
}

func (s solver) d17Computer() d17Computer {
	sections := s.Sections()
	regs := aoc.IntsIn(sections[0])
	return d17Computer{
		a:       regs[0],
		b:       regs[1],
		c:       regs[2],
		program: aoc.Ints(strings.Split(aoc.TrimPrefix(sections[1], "Program: "), ",")...),
	}
}

// run executes the program with register A set to a and returns what it
// outputs.
func (m d17Computer) run(a int) []int {
	b, c := m.b, m.c
	var out []int
	combo := func(op int) int {
		switch op {
		case 4:
			return a
		case 5:
			return b
		case 6:
			return c
		}
		return op
	}
	for ip := 0; ip+1 < len(m.program); ip += 2 {
		op := m.program[ip+1]
		switch m.program[ip] {
		case 0: // adv
			a >>= combo(op)
		case 1: // bxl
			b ^= op
		case 2: // bst
			b = combo(op) % 8
		case 3: // jnz
			if a != 0 {
				ip = op - 2
			}
		case 4: // bxc
			b ^= c
		case 5: // out
			out = append(out, combo(op)%8)
		case 6: // bdv
			b = a >> combo(op)
		case 7: // cdv
			c = a >> combo(op)
		}
	}
	return out
}

// quine finds the smallest A that makes the program print itself. The
// programs shift A right three bits per output, so A is built one octal
// digit at a time, most significant first, matching ever longer program
// suffixes.
func (m d17Computer) quine(a, i int) (int, bool) {
	if i < 0 {
		return a, true
	}
	for k := range 8 {
		na := a<<3 | k
		if slices.Equal(m.run(na), m.program[i:]) {
			if r, ok := m.quine(na, i-1); ok {
				return r, true
			}
		}
	}
	return 0, false
}
