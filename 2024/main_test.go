package main

import (
	"testing"

	"github.com/advent-of-go/aoc"
)

func TestSamples(t *testing.T) {
	results := aoc.CheckSamples(sources, &solver{})
	if len(results) == 0 {
		t.Fatal("no samples found")
	}
	for _, r := range results {
		if !r.OK() {
			t.Errorf("%s = %s; want %s", r.Name, r.Got, r.Want)
		}
	}
}
