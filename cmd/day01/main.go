// Command day01 solves "Sonar Sweep", day 1 of Advent of Code 2021.
//
//	day01 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day01"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day01.Puzzle)
}
