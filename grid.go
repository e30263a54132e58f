package aoc

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p is inside the grid.
func (g Grid[T]) In(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid turns lines of text into a byte grid. Trailing empty lines are
// ignored.
func ParseGrid(lines []string) Grid[byte] {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	g := make(Grid[byte], len(lines))
	for y, l := range lines {
		g[y] = []byte(l)
	}
	return g
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y := range g {
		out[y] = append([]T(nil), g[y]...)
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Find returns the first cell holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Render draws a byte grid as text, one row per line.
func Render(g Grid[byte]) string {
	var sb strings.Builder
	for _, row := range g {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash returns a digest of the grid contents, for spotting repeated states.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Region returns the cells 4-connected to start that hold the same value.
func Region[T comparable](g Grid[T], start Pt) []Pt {
	want := g.At(start)
	seen := map[Pt]bool{start: true}
	out := []Pt{start}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := g.AtOk(n); ok && v == want && !seen[n] {
				seen[n] = true
				out = append(out, n)
				q.Push(n)
			}
			return true
		})
		return true
	})
	return out
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell along its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = []Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// ParseDirection parses one of ^>v<.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

// Step moves p one unit in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	dd := d.Delta()
	return Pt2[T]{p.X + T(dd.X), p.Y + T(dd.Y)}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p into the torus of the given size.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
