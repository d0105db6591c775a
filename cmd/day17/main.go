// Command day17 solves "Trick Shot", day 17 of Advent of Code 2021.
//
//	day17 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day17"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day17.Puzzle)
}
