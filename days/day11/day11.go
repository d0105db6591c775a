// Package day11 solves "Dumbo Octopus", day 11 of Advent of Code 2021.
package day11

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 11.
var Puzzle = solver.Puzzle{Day: 11, Title: "Dumbo Octopus", Solve: Solve}

// tracer traces with key 'aoc.day11'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day11")
}

const (
	flashLevel = 9
	steps      = 100
	maxSteps   = 100000 // give up waiting for a synchronized flash
)

// Step increases every energy level, lets octopuses above level 9 flash
// (which in turn energizes their neighbours, diagonals included) and resets
// flashed octopuses to 0. It returns the number of flashes.
func Step(g *grid.Grid[int]) int {
	var pending []grid.Pos
	for _, p := range g.Positions() {
		g.Set(p, g.At(p)+1)
		if g.At(p) > flashLevel {
			pending = append(pending, p)
		}
	}
	flashed := make(map[grid.Pos]bool)
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, q := range g.KingStep(p) {
			g.Set(q, g.At(q)+1)
			if g.At(q) > flashLevel && !flashed[q] {
				pending = append(pending, q)
			}
		}
	}
	for p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

// Solve counts the flashes in the first 100 steps and finds the first step
// in which all octopuses flash.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var rows [][]int
	for i, line := range lines {
		digits, err := input.Digits(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		rows = append(rows, digits)
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if g.Rows()*g.Cols() == 0 {
		return nil, errors.New("no octopuses")
	}
	total, step, sync := 0, 0, 0
	for sync == 0 || step < steps {
		if step >= maxSteps {
			return nil, fmt.Errorf("octopuses do not synchronize within %d steps", maxSteps)
		}
		n := Step(g)
		step++
		if step <= steps {
			total += n
		}
		if sync == 0 && n == g.Rows()*g.Cols() {
			sync = step
		}
	}
	tracer().Debugf("after %d steps:\n%s", step, g)
	return solver.Parts(total, sync), nil
}
