// Command day03 solves "Binary Diagnostic", day 3 of Advent of Code 2021.
//
//	day03 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day03"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day03.Puzzle)
}
