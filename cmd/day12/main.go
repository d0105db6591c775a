// Command day12 solves "Passage Pathing", day 12 of Advent of Code 2021.
//
//	day12 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day12"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day12.Puzzle)
}
