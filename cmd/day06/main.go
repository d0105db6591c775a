// Command day06 solves "Lanternfish", day 6 of Advent of Code 2021.
//
//	day06 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day06"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day06.Puzzle)
}
