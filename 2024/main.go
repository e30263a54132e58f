package main

import (
	"embed"

	"github.com/advent-of-go/aoc"
)

func main() {
	aoc.Run(2024, sources, &solver{})
}

//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
