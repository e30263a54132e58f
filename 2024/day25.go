package main

import (
	"strings"
)

/*
want=3

#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####
*/
func (s solver) D25p1() any {
	var locks, keys [][]int
	space := 0
	for _, sec := range s.Sections() {
		rows := strings.Split(sec, "\n")
		space = len(rows) - 2
		heights := make([]int, len(rows[0]))
		for _, r := range rows {
			for x := range r {
				if r[x] == '#' {
					heights[x]++
				}
			}
		}
		for x := range heights {
			heights[x]--
		}
		if strings.Trim(rows[0], "#") == "" {
			locks = append(locks, heights)
		} else {
			keys = append(keys, heights)
		}
	}
	fits := 0
	for _, l := range locks {
	key:
		for _, k := range keys {
			for x := range l {
				if l[x]+k[x] > space {
					continue key
				}
			}
			fits++
		}
	}
	return fits
}
