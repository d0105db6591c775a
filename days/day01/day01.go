// Package day01 solves "Sonar Sweep", day 1 of Advent of Code 2021.
//
// The input is a list of sonar depth measurements, one per line.
package day01

import (
	"io"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 1.
var Puzzle = solver.Puzzle{Day: 1, Title: "Sonar Sweep", Solve: Solve}

// tracer traces with key 'aoc.day01'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day01")
}

// Solve counts depth increases, first for single measurements, then for
// sums of three-measurement sliding windows.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	depths := make([]int, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		d, err := input.ParseInt[int](line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		depths = append(depths, d)
	}
	tracer().Debugf("%d depth measurements", len(depths))
	sums := aoc.Map(aoc.Windows(depths, 3), aoc.Sum[int])
	return solver.Parts(countIncreases(depths), countIncreases(sums)), nil
}

func countIncreases(xs []int) int {
	n := 0
	for _, w := range aoc.Windows(xs, 2) {
		if w[1] > w[0] {
			n++
		}
	}
	return n
}
