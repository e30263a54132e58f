package aoc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatal().Msgf("not a digit: %q", r)
	}
	return int(r - '0')
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// NumDigits returns the number of decimal digits in n (n >= 0).
func NumDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10**n.
func Pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}

// Concat returns the number whose decimal digits are those of a followed
// by those of b.
func Concat(a, b int) int {
	return a*Pow10(NumDigits(b)) + b
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

var intRx = regexp.MustCompile(`-?\d+`)

// IntsIn returns every (optionally negative) integer embedded in s.
func IntsIn(s string) []int {
	return Ints(intRx.FindAllString(s, -1)...)
}
