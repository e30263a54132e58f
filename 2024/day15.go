package main

import (
	"strings"

	"github.com/advent-of-go/aoc"
)

/*
want=10092

##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
*/
func (s solver) D15p1() any {
	return s.d15Run(false)
}

// want=9021
func (s solver) D15p2() any {
	return s.d15Run(true)
}

var d15Widen = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

// d15Run plays the robot's moves and returns the sum of box GPS
// coordinates. A wide warehouse doubles every tile horizontally.
func (s solver) d15Run(wide bool) int {
	sections := s.Sections()
	rows := strings.Split(sections[0], "\n")
	if wide {
		for i, r := range rows {
			rows[i] = d15Widen.Replace(r)
		}
	}
	g := aoc.ParseGrid(rows)
	robot, ok := aoc.Find(g, '@')
	if !ok {
		panic("no robot")
	}
	for _, c := range []byte(sections[1]) {
		d, ok := aoc.ParseDirection(c)
		if !ok {
			continue
		}
		robot = d15Push(g, robot, d)
	}
	s.Debugf("\n%s", aoc.Render(g))
	sum := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == 'O' || c == '[' {
			sum += 100*p.Y + p.X
		}
	})
	return sum
}

// d15Push moves the robot one step in d along with every box it pushes,
// or nothing at all if any of them would hit a wall. It returns the
// robot's new position.
func d15Push(g aoc.Grid[byte], robot aoc.Pt, d aoc.Direction) aoc.Pt {
	vertical := d == aoc.Up || d == aoc.Down
	seen := map[aoc.Pt]bool{robot: true}
	var moving []aoc.Pt
	q := aoc.NewQueue(robot)
	add := func(p aoc.Pt) {
		if !seen[p] {
			seen[p] = true
			q.Push(p)
		}
	}
	for q.Len() > 0 {
		p, _ := q.Pop()
		moving = append(moving, p)
		n := p.Step(d)
		switch g.At(n) {
		case '#':
			return robot
		case 'O':
			add(n)
		case '[':
			add(n)
			if vertical {
				add(n.Step(aoc.Right))
			}
		case ']':
			add(n)
			if vertical {
				add(n.Step(aoc.Left))
			}
		}
	}
	// Cells are discovered one row (or column) further each level, so
	// moving them in reverse keeps every destination free.
	for i := len(moving) - 1; i >= 0; i-- {
		p := moving[i]
		g.Set(p.Step(d), g.At(p))
		g.Set(p, '.')
	}
	return robot.Step(d)
}
