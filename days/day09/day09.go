// Package day09 solves "Smoke Basin", day 9 of Advent of Code 2021.
package day09

import (
	"io"
	"slices"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 9.
var Puzzle = solver.Puzzle{Day: 9, Title: "Smoke Basin", Solve: Solve}

// tracer traces with key 'aoc.day09'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day09")
}

const ridge = 9

// ParseHeightmap reads rows of digits into a grid.
func ParseHeightmap(r io.Reader) (*grid.Grid[int], error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var rows [][]int
	for i, line := range lines {
		if line == "" {
			continue
		}
		digits, err := input.Digits(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		rows = append(rows, digits)
	}
	return grid.FromRows(rows)
}

// LowPoints returns the positions lower than all of their orthogonal neighbours.
func LowPoints(hm *grid.Grid[int]) []grid.Pos {
	var lows []grid.Pos
	for _, p := range hm.Positions() {
		low := true
		for _, q := range hm.Orthogonal(p) {
			if hm.At(q) <= hm.At(p) {
				low = false
				break
			}
		}
		if low {
			lows = append(lows, p)
		}
	}
	return lows
}

// BasinSize counts the positions reachable from p without crossing a 9.
func BasinSize(hm *grid.Grid[int], p grid.Pos) int {
	seen := map[grid.Pos]bool{p: true}
	queue := []grid.Pos{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, q := range hm.Orthogonal(cur) {
			if !seen[q] && hm.At(q) != ridge {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return len(seen)
}

// Solve adds up the risk levels of all low points and multiplies the sizes
// of the three largest basins.
func Solve(r io.Reader) (solver.Answers, error) {
	hm, err := ParseHeightmap(r)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("heightmap:\n%s", hm)
	lows := LowPoints(hm)
	risk := 0
	var sizes []int
	for _, p := range lows {
		risk += hm.At(p) + 1
		sizes = append(sizes, BasinSize(hm, p))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	if len(sizes) > 3 {
		sizes = sizes[:3]
	}
	return solver.Parts(risk, aoc.Product(sizes)), nil
}
