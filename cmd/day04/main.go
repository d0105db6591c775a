// Command day04 solves "Giant Squid", day 4 of Advent of Code 2021.
//
//	day04 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day04"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day04.Puzzle)
}
