// Package keypad prices button presses through a chain of robots, each
// typing on a directional keypad that drives the next robot's arm, the last
// of which types a code on a numeric door keypad.
package keypad

import (
	"fmt"

	"github.com/advent-of-go/aoc"
)

// Move is a button on the directional keypad.
type Move byte

const (
	Up       Move = '^'
	Down     Move = 'v'
	Left     Move = '<'
	Right    Move = '>'
	Activate Move = 'A'
)

func (m Move) String() string {
	return string(rune(m))
}

// apply moves p one cell in the direction of m. Activate leaves p alone.
func (m Move) apply(p aoc.Pt) aoc.Pt {
	if m == Activate {
		return p
	}
	d, ok := aoc.ParseDirection(byte(m))
	if !ok {
		panic(fmt.Sprintf("keypad: bad move %q", byte(m)))
	}
	return p.Step(d)
}

// Layout is the physical arrangement of one kind of keypad.
type Layout struct {
	name  string
	size  aoc.Pt
	gap   aoc.Pt
	keys  map[byte]aoc.Pt
	keyAt map[aoc.Pt]byte
}

// Numeric is the door keypad:
//
//	789
//	456
//	123
//	 0A
var Numeric = newLayout("numeric", "789", "456", "123", " 0A")

// Directional is the robot control keypad:
//
//	 ^A
//	<v>
var Directional = newLayout("directional", " ^A", "<v>")

// newLayout builds a layout from its rows. The single blank cell is the
// gap no arm may pass over.
func newLayout(name string, rows ...string) *Layout {
	g := aoc.ParseGrid(rows)
	l := &Layout{
		name:  name,
		size:  g.Size(),
		keys:  make(map[byte]aoc.Pt),
		keyAt: make(map[aoc.Pt]byte),
	}
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == ' ' {
			l.gap = p
			return
		}
		l.keys[c] = p
		l.keyAt[p] = c
	})
	return l
}

func (l *Layout) String() string {
	return l.name
}

// Has reports whether key is a button on l.
func (l *Layout) Has(key byte) bool {
	_, ok := l.keys[key]
	return ok
}

// Position returns where key sits on l. It panics if l has no such key;
// callers validate keys when parsing.
func (l *Layout) Position(key byte) aoc.Pt {
	p, ok := l.keys[key]
	if !ok {
		panic(fmt.Sprintf("keypad: %v keypad has no key %q", l, key))
	}
	return p
}

// KeyAt returns the key at p, if any.
func (l *Layout) KeyAt(p aoc.Pt) (byte, bool) {
	k, ok := l.keyAt[p]
	return k, ok
}

// IsForbidden reports whether p is the keypad's gap.
func (l *Layout) IsForbidden(p aoc.Pt) bool {
	return p == l.gap
}

func (l *Layout) on(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.size.X && p.Y < l.size.Y
}

// IsValidRoute reports whether an arm starting at start can follow r
// without ever stopping over the gap or leaving the keypad.
func (l *Layout) IsValidRoute(start aoc.Pt, r Route) bool {
	cur := start
	for i := 0; i < len(r); i++ {
		cur = Move(r[i]).apply(cur)
		if l.IsForbidden(cur) || !l.on(cur) {
			return false
		}
	}
	return true
}

// Type runs moves on l with the arm starting over Activate and returns the
// keys pressed, one per Activate.
func (l *Layout) Type(moves string) (string, error) {
	cur := l.Position(byte(Activate))
	var out []byte
	for i := 0; i < len(moves); i++ {
		m := Move(moves[i])
		if m != Activate && m != Up && m != Down && m != Left && m != Right {
			return "", fmt.Errorf("keypad: bad move %q at %d", moves[i], i)
		}
		cur = m.apply(cur)
		if l.IsForbidden(cur) || !l.on(cur) {
			return "", fmt.Errorf("keypad: arm left the %v keypad at move %d", l, i)
		}
		if m == Activate {
			k, _ := l.KeyAt(cur)
			out = append(out, k)
		}
	}
	return string(out), nil
}
