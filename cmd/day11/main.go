// Command day11 solves "Dumbo Octopus", day 11 of Advent of Code 2021.
//
//	day11 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day11"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day11.Puzzle)
}
