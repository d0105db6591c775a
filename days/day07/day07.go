// Package day07 solves "The Treachery of Whales", day 7 of Advent of Code 2021.
package day07

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 7.
var Puzzle = solver.Puzzle{Day: 7, Title: "The Treachery of Whales", Solve: Solve}

// tracer traces with key 'aoc.day07'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day07")
}

// Solve computes the least fuel needed to align all crabs, first with a
// constant fuel rate, then with a rate growing with every step.
//
// With constant rate the median is optimal. With growing rate the cost
// function is within ½ of its minimum at the mean, so floor and ceiling of
// the mean are the only candidates.
func Solve(r io.Reader) (solver.Answers, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	crabs, err := input.Ints[int](strings.TrimSpace(string(text)), ",")
	if err != nil {
		return nil, err
	}
	if len(crabs) == 0 {
		return nil, errors.New("no crab positions")
	}
	slices.Sort(crabs)
	median := crabs[len(crabs)/2]
	part1 := cost(crabs, median, linear)
	sum := aoc.Sum(crabs)
	lo := floorDiv(sum, len(crabs))
	part2 := min(cost(crabs, lo, triangular), cost(crabs, lo+1, triangular))
	tracer().Debugf("median=%d mean≈%d", median, lo)
	return solver.Parts(part1, part2), nil
}

func linear(d int) int {
	return d
}

func triangular(d int) int {
	return d * (d + 1) / 2
}

func cost(crabs []int, target int, rate func(int) int) int {
	total := 0
	for _, c := range crabs {
		total += rate(aoc.Abs(c - target))
	}
	return total
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
