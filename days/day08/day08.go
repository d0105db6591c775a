// Package day08 solves "Seven Segment Search", day 8 of Advent of Code 2021.
//
// Every signal pattern is represented as a 7-bit mask of lit segments. The
// digits are told apart by the number of lit segments and by how many
// segments they share with the easily identified digits 1 and 4.
package day08

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 8.
var Puzzle = solver.Puzzle{Day: 8, Title: "Seven Segment Search", Solve: Solve}

// tracer traces with key 'aoc.day08'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day08")
}

// Pattern is a set of lit segments 'a'…'g'.
type Pattern uint8

// ParsePattern converts a string of segment letters into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("invalid segment %q", c)
		}
		p |= 1 << (c - 'a')
	}
	return p, nil
}

// Count is the number of lit segments.
func (p Pattern) Count() int {
	return bits.OnesCount8(uint8(p))
}

func (p Pattern) common(q Pattern) int {
	return (p & q).Count()
}

// Entry is one line of notes: ten unique patterns and four output patterns.
type Entry struct {
	Signals [10]Pattern
	Output  [4]Pattern
}

// ParseEntry parses a line of the form "p0 … p9 | o0 o1 o2 o3".
func ParseEntry(line string) (Entry, error) {
	var e Entry
	signals, output, ok := strings.Cut(line, "|")
	if !ok {
		return e, fmt.Errorf("missing '|' in %q", line)
	}
	sf, of := strings.Fields(signals), strings.Fields(output)
	if len(sf) != len(e.Signals) || len(of) != len(e.Output) {
		return e, fmt.Errorf("expected 10 signal and 4 output patterns, got %d and %d", len(sf), len(of))
	}
	var err error
	for i, s := range sf {
		if e.Signals[i], err = ParsePattern(s); err != nil {
			return e, err
		}
	}
	for i, s := range of {
		if e.Output[i], err = ParsePattern(s); err != nil {
			return e, err
		}
	}
	return e, nil
}

// Decode deduces which pattern shows which digit.
func (e Entry) Decode() (map[Pattern]int, error) {
	var one, four Pattern
	for _, p := range e.Signals {
		switch p.Count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return nil, fmt.Errorf("patterns for 1 and 4 not found")
	}
	table := make(map[Pattern]int, 10)
	for _, p := range e.Signals {
		d := -1
		switch p.Count() {
		case 2:
			d = 1
		case 3:
			d = 7
		case 4:
			d = 4
		case 7:
			d = 8
		case 5:
			switch {
			case p.common(one) == 2:
				d = 3
			case p.common(four) == 3:
				d = 5
			default:
				d = 2
			}
		case 6:
			switch {
			case p.common(four) == 4:
				d = 9
			case p.common(one) == 2:
				d = 0
			default:
				d = 6
			}
		}
		if d < 0 {
			return nil, fmt.Errorf("pattern with %d segments matches no digit", p.Count())
		}
		table[p] = d
	}
	if err := checkTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

func checkTable(table map[Pattern]int) error {
	var seen [10]bool
	for _, d := range table {
		if seen[d] {
			return fmt.Errorf("digit %d is shown by more than one pattern", d)
		}
		seen[d] = true
	}
	if len(table) != 10 {
		return fmt.Errorf("expected 10 distinct patterns, got %d", len(table))
	}
	return nil
}

// Value decodes the four-digit output value.
func (e Entry) Value() (int, error) {
	table, err := e.Decode()
	if err != nil {
		return 0, err
	}
	v := 0
	for _, p := range e.Output {
		d, ok := table[p]
		if !ok {
			return 0, fmt.Errorf("output pattern %07b is not among the signals", p)
		}
		v = 10*v + d
	}
	return v, nil
}

// Solve counts the output digits 1, 4, 7 and 8 and then adds up all
// decoded output values.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	easy, total := 0, 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		for _, p := range e.Output {
			switch p.Count() {
			case 2, 3, 4, 7:
				easy++
			}
		}
		v, err := e.Value()
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		tracer().Debugf("line %d shows %04d", i+1, v)
		total += v
	}
	return solver.Parts(easy, total), nil
}
