// Package day12 solves "Passage Pathing", day 12 of Advent of Code 2021.
//
// Caves named in upper case are big and may be visited any number of times.
// Paths are counted by depth-first search.
package day12

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 12.
var Puzzle = solver.Puzzle{Day: 12, Title: "Passage Pathing", Solve: Solve}

// tracer traces with key 'aoc.day12'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day12")
}

const (
	start = "start"
	end   = "end"
)

// ErrInfinitePaths is returned if two big caves are connected; there would
// be infinitely many paths.
var ErrInfinitePaths = errors.New("adjacent big caves allow infinitely many paths")

// Caves is the undirected graph of cave connections.
type Caves map[string][]string

// ParseCaves reads lines of the form "a-b".
func ParseCaves(lines []string) (Caves, error) {
	caves := make(Caves)
	for i, line := range lines {
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" {
			return nil, input.AtLine(i+1, fmt.Errorf("expected connection a-b, got %q", line))
		}
		if isBig(a) && isBig(b) {
			return nil, input.AtLine(i+1, fmt.Errorf("%w: %s", ErrInfinitePaths, line))
		}
		caves[a] = append(caves[a], b)
		caves[b] = append(caves[b], a)
	}
	if _, ok := caves[start]; !ok {
		return nil, errors.New("no start cave")
	}
	return caves, nil
}

func isBig(cave string) bool {
	for _, r := range cave {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// CountPaths counts the paths from start to end which visit small caves at
// most once. If allowTwice is set, a single small cave other than start and
// end may be visited twice.
func (caves Caves) CountPaths(allowTwice bool) int {
	visits := make(map[string]int)
	var walk func(cave string, twiceUsed bool) int
	walk = func(cave string, twiceUsed bool) int {
		if cave == end {
			return 1
		}
		visits[cave]++
		defer func() { visits[cave]-- }()
		n := 0
		for _, next := range caves[cave] {
			switch {
			case next == start:
			case isBig(next) || visits[next] == 0:
				n += walk(next, twiceUsed)
			case !twiceUsed && next != end:
				n += walk(next, true)
			}
		}
		return n
	}
	return walk(start, !allowTwice)
}

// Solve counts the paths through the cave system, visiting small caves at
// most once, then allowing a single small cave to be visited twice.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	caves, err := ParseCaves(lines)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%d caves", len(caves))
	return solver.Parts(caves.CountPaths(false), caves.CountPaths(true)), nil
}
