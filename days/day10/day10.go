// Package day10 solves "Syntax Scoring", day 10 of Advent of Code 2021.
package day10

import (
	"fmt"
	"io"
	"slices"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 10.
var Puzzle = solver.Puzzle{Day: 10, Title: "Syntax Scoring", Solve: Solve}

// tracer traces with key 'aoc.day10'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day10")
}

var closing = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

var errorScore = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completionScore = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}

// Status classifies a line of navigation subsystem code.
type Status int

const (
	Complete Status = iota
	Corrupted
	Incomplete
)

// Check runs a line through a stack of open chunks. A corrupted line
// reports its first illegal character; an incomplete line reports the
// sequence of closing characters completing it.
func Check(line string) (Status, byte, []byte, error) {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if closer, ok := closing[c]; ok {
			stack = append(stack, closer)
			continue
		}
		if _, ok := errorScore[c]; !ok {
			return Complete, 0, nil, fmt.Errorf("invalid character %q at position %d", c, i)
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return Corrupted, c, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return Complete, 0, nil, nil
	}
	slices.Reverse(stack)
	return Incomplete, 0, stack, nil
}

// CompletionScore scores a completion string.
func CompletionScore(completion []byte) int {
	score := 0
	for _, c := range completion {
		score = 5*score + completionScore[c]
	}
	return score
}

// Solve adds up the syntax error scores of corrupted lines and finds the
// middle completion score of incomplete lines.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	syntaxErrors := 0
	var completions []int
	for i, line := range lines {
		if line == "" {
			continue
		}
		status, illegal, completion, err := Check(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		switch status {
		case Corrupted:
			syntaxErrors += errorScore[illegal]
		case Incomplete:
			completions = append(completions, CompletionScore(completion))
		}
	}
	if len(completions) == 0 {
		return nil, fmt.Errorf("no incomplete lines")
	}
	slices.Sort(completions)
	tracer().Debugf("%d incomplete lines", len(completions))
	return solver.Parts(syntaxErrors, completions[len(completions)/2]), nil
}
