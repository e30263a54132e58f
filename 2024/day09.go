package main

import (
	"github.com/advent-of-go/aoc"
)

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	var blocks []int
	for i, n := range aoc.Digits(s.Text()) {
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for range n {
			blocks = append(blocks, id)
		}
	}
	l, r := 0, len(blocks)-1
	for l < r {
		switch {
		case blocks[l] != -1:
			l++
		case blocks[r] == -1:
			r--
		default:
			blocks[l], blocks[r] = blocks[r], -1
		}
	}
	sum := 0
	for i, id := range blocks {
		if id == -1 {
			break
		}
		sum += i * id
	}
	return sum
}

type d9Span struct {
	pos, len int
}

// want=2858
func (s solver) D9p2() any {
	var files, free []d9Span
	pos := 0
	for i, n := range aoc.Digits(s.Text()) {
		if i%2 == 0 {
			files = append(files, d9Span{pos, n})
		} else {
			free = append(free, d9Span{pos, n})
		}
		pos += n
	}
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range free {
			gap := &free[i]
			if gap.pos >= f.pos {
				break
			}
			if gap.len >= f.len {
				f.pos = gap.pos
				gap.pos += f.len
				gap.len -= f.len
				break
			}
		}
	}
	sum := 0
	for id, f := range files {
		for k := range f.len {
			sum += id * (f.pos + k)
		}
	}
	return sum
}
