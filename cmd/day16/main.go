// Command day16 solves "Packet Decoder", day 16 of Advent of Code 2021.
//
//	day16 [--trace level] <input-file>
package main

import (
	"github.com/npillmayer/aoc2021/days/day16"
	"github.com/npillmayer/aoc2021/solver"
)

func main() {
	solver.Main(day16.Puzzle)
}
