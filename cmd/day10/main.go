// Command day10 solves "Syntax Scoring", day 10 of Advent of Code 2021.
//
//	day10 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day10"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day10.Puzzle)
}
