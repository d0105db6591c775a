// Command day14 solves "Extended Polymerization", day 14 of Advent of Code 2021.
//
//	day14 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day14"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day14.Puzzle)
}
