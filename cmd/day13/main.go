// Command day13 solves "Transparent Origami", day 13 of Advent of Code 2021.
//
//	day13 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day13"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day13.Puzzle)
}
