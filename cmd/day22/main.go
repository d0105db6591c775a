// Command day22 solves "Reactor Reboot", day 22 of Advent of Code 2021.
//
//	day22 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day22"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day22.Puzzle)
}
