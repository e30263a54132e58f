package aoc

import (
	"slices"
	"testing"
)

func TestIntsIn(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"p=0,4 v=3,-3", []int{0, 4, 3, -3}},
		{"Button A: X+94, Y+34", []int{94, 34}},
		{"190: 10 19", []int{190, 10, 19}},
		{"no numbers", nil},
	}
	for _, tt := range tests {
		if got := IntsIn(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("IntsIn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 345, 12345},
		{15, 6, 156},
		{1, 0, 10},
		{0, 7, 7},
	}
	for _, tt := range tests {
		if got := Concat(tt.a, tt.b); got != tt.want {
			t.Errorf("Concat(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNumDigits(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{2024, 4},
		{1000000, 7},
	}
	for _, tt := range tests {
		if got := NumDigits(tt.n); got != tt.want {
			t.Errorf("NumDigits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSmallMath(t *testing.T) {
	if got := GCD(12, 18); got != 6 {
		t.Errorf("GCD(12, 18) = %d", got)
	}
	if got := GCD(0, 5); got != 5 {
		t.Errorf("GCD(0, 5) = %d", got)
	}
	if got := AbsDiff(3, 8); got != 5 {
		t.Errorf("AbsDiff(3, 8) = %d", got)
	}
	if got := Sum(Digits("2333")...); got != 11 {
		t.Errorf("Sum(Digits(2333)) = %d", got)
	}
	if got := Pow10(3); got != 1000 {
		t.Errorf("Pow10(3) = %d", got)
	}
}
