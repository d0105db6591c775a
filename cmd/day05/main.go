// Command day05 solves "Hydrothermal Venture", day 5 of Advent of Code 2021.
//
//	day05 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day05"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day05.Puzzle)
}
