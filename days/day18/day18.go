// Package day18 solves "Snailfish", day 18 of Advent of Code 2021.
//
// Parsing and arithmetic of snailfish numbers live in package snailfish.
// Every non-empty line has to be a snailfish number without any white space,
// lines with leading or trailing blanks are rejected.
package day18

import (
	"errors"
	"io"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/snailfish"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 18.
var Puzzle = solver.Puzzle{Day: 18, Title: "Snailfish", Solve: Solve}

// tracer traces with key 'aoc.day18'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day18")
}

// Solve computes the magnitude of the sum of all numbers, and the largest
// magnitude of a sum of two different numbers.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.RawLines(r)
	if err != nil {
		return nil, err
	}
	var numbers []snailfish.Node
	for i, line := range lines {
		if line == "" {
			continue
		}
		n, err := snailfish.Parse(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		numbers = append(numbers, n)
	}
	sum, err := snailfish.Sum(numbers...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("final sum %s\n%s", sum, snailfish.Dump(sum))
	largest, err := LargestPairMagnitude(numbers)
	if err != nil {
		return nil, err
	}
	return solver.Parts(snailfish.Magnitude(sum), largest), nil
}

// LargestPairMagnitude finds the largest magnitude of a+b for any two
// different numbers a and b. Addition is not commutative, so both orders
// are tried.
func LargestPairMagnitude(numbers []snailfish.Node) (int64, error) {
	if len(numbers) < 2 {
		return 0, errors.New("need at least two snailfish numbers")
	}
	var largest int64
	for i, a := range numbers {
		for j, b := range numbers {
			if i != j {
				largest = max(largest, snailfish.Magnitude(snailfish.Add(a, b)))
			}
		}
	}
	return largest, nil
}
