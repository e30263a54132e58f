package main

import (
	"testing"

	"github.com/advent-of-go/aoc"
)

func TestD18Escape(t *testing.T) {
	tests := []struct {
		name      string
		corrupted []aoc.Pt
		want      int
	}{
		{"open", nil, 4},
		{"start corrupted", []aoc.Pt{{X: 0, Y: 0}}, -1},
		{"end corrupted", []aoc.Pt{{X: 2, Y: 2}}, -1},
		{"wall", []aoc.Pt{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, -1},
		{"detour", []aoc.Pt{{X: 1, Y: 0}, {X: 1, Y: 1}}, 4},
	}
	for _, tt := range tests {
		if got := d18Escape(tt.corrupted, 2); got != tt.want {
			t.Errorf("%s: d18Escape = %d, want %d", tt.name, got, tt.want)
		}
	}
}
