// Command day15 solves "Chiton", day 15 of Advent of Code 2021.
//
//	day15 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day15"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day15.Puzzle)
}
