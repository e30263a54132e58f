package keypad

import (
	"strings"

	"github.com/advent-of-go/aoc"
)

// Solver prices codes through a chain of directional keypads. It memoizes
// costs by (depth, route) and the valid routes between each pair of
// directional keys. A Solver is not safe for concurrent use.
//
// The cheaper of two candidate routes between the same pair of keys can
// change with depth (v to A ties up to depth 3, after which vertical-first
// wins), so route choices are made per depth rather than cached by pair.
type Solver struct {
	costs  map[costKey]int
	routes map[hop][]Route

	stats Stats
}

type costKey struct {
	depth int
	route Route
}

type hop struct {
	from, to aoc.Pt
}

// Stats counts cost cache lookups at depth > 0.
type Stats struct {
	Hits, Misses int
}

func NewSolver() *Solver {
	return &Solver{
		costs:  make(map[costKey]int),
		routes: make(map[hop][]Route),
	}
}

func (s *Solver) Stats() Stats {
	return s.stats
}

// Cost returns the fewest presses a human must make for the robot typing
// on the first directional keypad to enter r, with depth directional
// keypads in the chain. At depth 0 the human types r directly.
func (s *Solver) Cost(r Route, depth int) int {
	if depth == 0 {
		return len(r)
	}
	k := costKey{depth, r}
	if c, ok := s.costs[k]; ok {
		s.stats.Hits++
		return c
	}
	s.stats.Misses++
	total := 0
	cur := Directional.Position(byte(Activate))
	for i := 0; i < len(r); i++ {
		next := Directional.Position(r[i])
		total += s.Cost(s.BestRoute(cur, next, depth-1), depth-1)
		cur = next
	}
	s.costs[k] = total
	return total
}

// BestRoute returns the cheapest valid route between two directional keys
// when priced at depth. Ties go to the horizontal-first route.
func (s *Solver) BestRoute(from, to aoc.Pt, depth int) Route {
	return s.cheapest(s.candidates(from, to), depth)
}

func (s *Solver) candidates(from, to aoc.Pt) []Route {
	h := hop{from, to}
	if rs, ok := s.routes[h]; ok {
		return rs
	}
	rs := Candidates(Directional, from, to)
	s.routes[h] = rs
	return rs
}

func (s *Solver) cheapest(rs []Route, depth int) Route {
	best, bestCost := rs[0], s.Cost(rs[0], depth)
	for _, r := range rs[1:] {
		if c := s.Cost(r, depth); c < bestCost {
			best, bestCost = r, c
		}
	}
	return best
}

// Presses returns the fewest human presses needed to type code on the
// numeric keypad through depth robot-operated directional keypads.
func (s *Solver) Presses(code Code, depth int) int {
	total := 0
	cur := Numeric.Position(byte(Activate))
	for i := 0; i < len(code.Keys); i++ {
		next := Numeric.Position(code.Keys[i])
		total += s.Cost(s.cheapest(Candidates(Numeric, cur, next), depth), depth)
		cur = next
	}
	return total
}

// Complexity is Presses times the code's numeric value.
func (s *Solver) Complexity(code Code, depth int) int {
	return s.Presses(code, depth) * code.Value
}

// Expand returns one shortest sequence of human presses that types code.
// The result has Presses(code, depth) bytes, so it is only practical for
// small depths.
func (s *Solver) Expand(code Code, depth int) string {
	var sb strings.Builder
	cur := Numeric.Position(byte(Activate))
	for i := 0; i < len(code.Keys); i++ {
		next := Numeric.Position(code.Keys[i])
		s.expand(&sb, s.cheapest(Candidates(Numeric, cur, next), depth), depth)
		cur = next
	}
	return sb.String()
}

func (s *Solver) expand(sb *strings.Builder, r Route, depth int) {
	if depth == 0 {
		sb.WriteString(string(r))
		return
	}
	cur := Directional.Position(byte(Activate))
	for i := 0; i < len(r); i++ {
		next := Directional.Position(r[i])
		s.expand(sb, s.BestRoute(cur, next, depth-1), depth-1)
		cur = next
	}
}

// TotalComplexity sums the complexity of codes using one fresh Solver.
func TotalComplexity(codes []Code, depth int) int {
	s := NewSolver()
	total := 0
	for _, c := range codes {
		total += s.Complexity(c, depth)
	}
	return total
}
