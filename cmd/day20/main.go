// Command day20 solves "Trench Map", day 20 of Advent of Code 2021.
//
//	day20 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day20"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day20.Puzzle)
}
