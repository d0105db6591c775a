// Command day02 solves "Dive!", day 2 of Advent of Code 2021.
//
//	day02 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day02"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day02.Puzzle)
}
