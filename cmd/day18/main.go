// Command day18 solves "Snailfish", day 18 of Advent of Code 2021.
//
//	day18 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day18"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day18.Puzzle)
}
