package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/advent-of-go/aoc"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

/*
want=4

x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02
*/
func (s solver) D24p1() any {
	c := s.d24Circuit()
	z, err := c.run(c.init)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluating circuit")
	}
	return z
}

// D24p2 names the eight gate outputs that were swapped in pairs to break
// the ripple-carry adder.
func (s solver) D24p2() any {
	c := s.d24Circuit()
	wrong := c.suspects()
	slices.Sort(wrong)
	s.Debug("suspect wires: ", wrong)
	if len(wrong) != 8 {
		log.Warn().Strs("wires", wrong).Msg("expected 8 suspect wires")
	} else if pairs, ok := c.repair(wrong); ok {
		s.Debug("swaps: ", pairs)
	} else {
		log.Warn().Strs("wires", wrong).Msg("no pairing of suspects fixes the adder")
	}
	return strings.Join(wrong, ",")
}

type d24Gate struct {
	a, op, b string
}

type d24Circuit struct {
	init  map[string]int
	gates map[string]d24Gate // by output wire
	zs    []string           // output wires, most significant first
	bits  int                // width of each addend
}

func (s solver) d24Circuit() d24Circuit {
	sections := s.Sections()
	c := d24Circuit{
		init:  map[string]int{},
		gates: map[string]d24Gate{},
	}
	for _, line := range strings.Split(sections[0], "\n") {
		name, v, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		c.init[name] = aoc.Int(v)
		if strings.HasPrefix(name, "x") {
			c.bits++
		}
	}
	for _, line := range strings.Split(sections[1], "\n") {
		f := strings.Fields(line)
		if len(f) != 5 {
			continue
		}
		c.gates[f[4]] = d24Gate{a: f[0], op: f[1], b: f[2]}
		if strings.HasPrefix(f[4], "z") {
			c.zs = append(c.zs, f[4])
		}
	}
	slices.Sort(c.zs)
	slices.Reverse(c.zs)
	return c
}

// run evaluates the circuit with the given input wires and returns the
// number on the z wires. Swapped outputs can create loops, which are
// reported as errors.
func (c d24Circuit) run(inputs map[string]int) (int, error) {
	vals := maps.Clone(inputs)
	visiting := map[string]bool{}
	var eval func(w string) (int, error)
	eval = func(w string) (int, error) {
		if v, ok := vals[w]; ok {
			return v, nil
		}
		g, ok := c.gates[w]
		if !ok {
			return 0, fmt.Errorf("wire %s has no driver", w)
		}
		if visiting[w] {
			return 0, fmt.Errorf("loop through wire %s", w)
		}
		visiting[w] = true
		a, err := eval(g.a)
		if err != nil {
			return 0, err
		}
		b, err := eval(g.b)
		if err != nil {
			return 0, err
		}
		var v int
		switch g.op {
		case "AND":
			v = a & b
		case "OR":
			v = a | b
		case "XOR":
			v = a ^ b
		default:
			return 0, fmt.Errorf("wire %s: unknown gate %q", w, g.op)
		}
		vals[w] = v
		return v, nil
	}
	z := 0
	for _, w := range c.zs {
		v, err := eval(w)
		if err != nil {
			return 0, err
		}
		z = z<<1 | v
	}
	return z, nil
}

// suspects returns the gate outputs that break the shape of a ripple-carry
// adder: every z but the last comes from an XOR, an XOR either reads the
// inputs or drives a z, an input XOR feeds a second XOR, and an AND feeds
// the carry OR. Bit 0 is a half adder and is exempt.
func (c d24Circuit) suspects() []string {
	readers := map[string][]string{}
	for _, g := range c.gates {
		readers[g.a] = append(readers[g.a], g.op)
		readers[g.b] = append(readers[g.b], g.op)
	}
	isInput := func(w string) bool {
		return strings.HasPrefix(w, "x") || strings.HasPrefix(w, "y")
	}
	last := fmt.Sprintf("z%02d", c.bits)
	var out []string
	for w, g := range c.gates {
		fromInputs := isInput(g.a) && isInput(g.b)
		bit0 := fromInputs && strings.HasSuffix(g.a, "00")
		switch {
		case strings.HasPrefix(w, "z") && g.op != "XOR" && w != last:
			out = append(out, w)
		case g.op == "XOR" && !fromInputs && !strings.HasPrefix(w, "z"):
			out = append(out, w)
		case g.op == "XOR" && fromInputs && !bit0 && !slices.Contains(readers[w], "XOR"):
			out = append(out, w)
		case g.op == "AND" && !bit0 && !slices.Contains(readers[w], "OR"):
			out = append(out, w)
		}
	}
	return out
}

// repair tries every way of pairing up wires, swapping each pair's
// drivers, and returns the first pairing under which the circuit adds.
func (c d24Circuit) repair(wires []string) ([][2]string, bool) {
	var found [][2]string
	ok := d24Pairings(wires, func(pairs [][2]string) bool {
		fixed := c
		fixed.gates = maps.Clone(c.gates)
		for _, p := range pairs {
			fixed.gates[p[0]], fixed.gates[p[1]] = fixed.gates[p[1]], fixed.gates[p[0]]
		}
		if fixed.adds() {
			found = slices.Clone(pairs)
			return true
		}
		return false
	})
	return found, ok
}

// adds checks the circuit against a set of additions that exercise every
// bit and the full carry chain.
func (c d24Circuit) adds() bool {
	mask := 1<<c.bits - 1
	cases := [][2]int{{0, 0}, {mask, 1}, {mask, mask}}
	for i := range c.bits {
		cases = append(cases, [2]int{1 << i, 0}, [2]int{0, 1 << i}, [2]int{1 << i, 1 << i})
	}
	for _, tc := range cases {
		z, err := c.run(c.inputs(tc[0], tc[1]))
		if err != nil || z != tc[0]+tc[1] {
			return false
		}
	}
	return true
}

func (c d24Circuit) inputs(x, y int) map[string]int {
	in := make(map[string]int, 2*c.bits)
	for i := range c.bits {
		in[fmt.Sprintf("x%02d", i)] = x >> i & 1
		in[fmt.Sprintf("y%02d", i)] = y >> i & 1
	}
	return in
}

// d24Pairings calls f with each way of splitting ws into pairs until f
// returns true.
func d24Pairings(ws []string, f func([][2]string) bool) bool {
	if len(ws) == 0 {
		return f(nil)
	}
	for i := 1; i < len(ws); i++ {
		pair := [2]string{ws[0], ws[i]}
		rest := slices.Concat(ws[1:i], ws[i+1:])
		if d24Pairings(rest, func(ps [][2]string) bool {
			return f(append(ps, pair))
		}) {
			return true
		}
	}
	return false
}
