// Command day19 solves "Beacon Scanner", day 19 of Advent of Code 2021.
//
//	day19 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day19"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day19.Puzzle)
}
