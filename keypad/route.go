package keypad

import (
	"fmt"
	"strings"

	"github.com/advent-of-go/aoc"
)

// Route is a sequence of moves ending in Activate. Routes are strings so
// they can key maps directly.
type Route string

// RoutesBetween returns the two monotonic routes from one cell to another:
// all horizontal moves first, or all vertical moves first. Both end with
// Activate, and both are just "A" when from == to. Any other shortest path
// is never cheaper, so only these two are considered. Whether a route
// crosses a gap is up to the caller.
func RoutesBetween(from, to aoc.Pt) (horizontal, vertical Route) {
	var h, v string
	if dx := to.X - from.X; dx > 0 {
		h = strings.Repeat(Right.String(), dx)
	} else {
		h = strings.Repeat(Left.String(), -dx)
	}
	if dy := to.Y - from.Y; dy > 0 {
		v = strings.Repeat(Down.String(), dy)
	} else {
		v = strings.Repeat(Up.String(), -dy)
	}
	a := Activate.String()
	return Route(h + v + a), Route(v + h + a)
}

// Candidates returns the distinct routes from RoutesBetween that stay on
// l, horizontal-first first. It panics if neither does, which the keypad
// layouts rule out.
func Candidates(l *Layout, from, to aoc.Pt) []Route {
	h, v := RoutesBetween(from, to)
	var out []Route
	if l.IsValidRoute(from, h) {
		out = append(out, h)
	}
	if v != h && l.IsValidRoute(from, v) {
		out = append(out, v)
	}
	if len(out) == 0 {
		panic(fmt.Sprintf("keypad: no route from %v to %v on %v keypad", from, to, l))
	}
	return out
}
