// Package day14 solves "Extended Polymerization", day 14 of Advent of Code 2021.
//
// The polymer grows exponentially, so it is represented by the counts of its
// adjacent element pairs instead of as a string.
package day14

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 14.
var Puzzle = solver.Puzzle{Day: 14, Title: "Extended Polymerization", Solve: Solve}

// tracer traces with key 'aoc.day14'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day14")
}

// pair is two adjacent elements.
type pair = aoc.Pair[byte, byte]

// Polymer counts pairs of adjacent elements. The last element of the
// template never changes and is remembered separately.
type Polymer struct {
	pairs map[pair]int64
	last  byte
}

// NewPolymer creates a polymer from a template string.
func NewPolymer(template string) (Polymer, error) {
	if len(template) == 0 {
		return Polymer{}, errors.New("empty polymer template")
	}
	p := Polymer{pairs: make(map[pair]int64), last: template[len(template)-1]}
	for i := 0; i+1 < len(template); i++ {
		p.pairs[aoc.P(template[i], template[i+1])]++
	}
	return p, nil
}

// Rules maps a pair to the element inserted between its elements.
type Rules map[pair]byte

// ParseRule parses a line like "CH -> B".
func ParseRule(line string) (pair, byte, error) {
	lhs, rhs, ok := strings.Cut(line, "->")
	lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
	if !ok || len(lhs) != 2 || len(rhs) != 1 {
		return pair{}, 0, fmt.Errorf("invalid insertion rule %q", line)
	}
	return aoc.P(lhs[0], lhs[1]), rhs[0], nil
}

// Step applies all insertion rules simultaneously.
func (p Polymer) Step(rules Rules) Polymer {
	next := Polymer{pairs: make(map[pair]int64, len(p.pairs)), last: p.last}
	for pr, n := range p.pairs {
		if e, ok := rules[pr]; ok {
			next.pairs[aoc.P(pr.Left, e)] += n
			next.pairs[aoc.P(e, pr.Right)] += n
		} else {
			next.pairs[pr] += n
		}
	}
	return next
}

// Spread is the difference between the quantities of the most common and
// the least common element.
func (p Polymer) Spread() int64 {
	counts := map[byte]int64{p.last: 1}
	for pr, n := range p.pairs {
		counts[pr.Left] += n
	}
	quantities := make([]int64, 0, len(counts))
	for _, n := range counts {
		quantities = append(quantities, n)
	}
	lo, hi, _ := aoc.MinMax(quantities)
	return hi - lo
}

// Solve computes the element spread after 10 and after 40 steps.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	batches := input.Batches(lines)
	if len(batches) != 2 || len(batches[0]) != 1 {
		return nil, errors.New("expected a template line and a block of insertion rules")
	}
	polymer, err := NewPolymer(batches[0][0])
	if err != nil {
		return nil, err
	}
	rules := make(Rules)
	for _, line := range batches[1] {
		pr, e, err := ParseRule(line)
		if err != nil {
			return nil, err
		}
		rules[pr] = e
	}
	var spreads []int64
	for step := 1; step <= 40; step++ {
		polymer = polymer.Step(rules)
		if step == 10 || step == 40 {
			spreads = append(spreads, polymer.Spread())
		}
	}
	tracer().Debugf("%d distinct pairs after 40 steps", len(polymer.pairs))
	return solver.Parts(spreads[0], spreads[1]), nil
}
