// Command day08 solves "Seven Segment Search", day 8 of Advent of Code 2021.
//
//	day08 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day08"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day08.Puzzle)
}
