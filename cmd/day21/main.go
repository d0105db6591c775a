// Command day21 solves "Dirac Dice", day 21 of Advent of Code 2021.
//
//	day21 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day21"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day21.Puzzle)
}
