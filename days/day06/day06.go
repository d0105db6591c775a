// Package day06 solves "Lanternfish", day 6 of Advent of Code 2021.
//
// Fish are not simulated one by one; they are counted by their timer value,
// and a day is a transition of these nine counters.
package day06

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 6.
var Puzzle = solver.Puzzle{Day: 6, Title: "Lanternfish", Solve: Solve}

// tracer traces with key 'aoc.day06'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day06")
}

const (
	maxTimer   = 8 // timer of a newborn fish
	resetTimer = 6 // timer of a fish after spawning
)

// School counts lanternfish by timer value.
type School [maxTimer + 1]int64

// NewSchool counts the fish of a list of timer values.
func NewSchool(timers []int) (School, error) {
	var s School
	for _, t := range timers {
		if t < 0 || t > maxTimer {
			return s, fmt.Errorf("fish attribute %d exceeds limit of %d", t, maxTimer)
		}
		s[t]++
	}
	return s, nil
}

// Step advances the school by one day.
func (s School) Step() School {
	var next School
	copy(next[:], s[1:])
	next[resetTimer] += s[0]
	next[maxTimer] = s[0]
	return next
}

// After advances the school by a number of days.
func (s School) After(days int) School {
	for i := 0; i < days; i++ {
		s = s.Step()
	}
	return s
}

// Total is the number of fish in the school.
func (s School) Total() int64 {
	var n int64
	for _, c := range s {
		n += c
	}
	return n
}

// Solve counts the fish after 80 and after 256 days.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var timers []int
	for i, line := range lines {
		if line == "" {
			continue
		}
		ts, err := input.Ints[int](strings.TrimSuffix(line, ","), ",")
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		timers = append(timers, ts...)
	}
	school, err := NewSchool(timers)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("initial school: %v", school)
	return solver.Parts(school.After(80).Total(), school.After(256).Total()), nil
}
