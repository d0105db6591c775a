// Command day07 solves "The Treachery of Whales", day 7 of Advent of Code 2021.
//
//	day07 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day07"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day07.Puzzle)
}
