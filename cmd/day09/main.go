// Command day09 solves "Smoke Basin", day 9 of Advent of Code 2021.
//
//	day09 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day09"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day09.Puzzle)
}
