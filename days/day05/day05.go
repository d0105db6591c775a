// Package day05 solves "Hydrothermal Venture", day 5 of Advent of Code 2021.
package day05

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 5.
var Puzzle = solver.Puzzle{Day: 5, Title: "Hydrothermal Venture", Solve: Solve}

// tracer traces with key 'aoc.day05'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day05")
}

// Point is a position on the ocean floor.
type Point struct {
	X, Y int
}

// Segment is a line of hydrothermal vents, including both end points.
type Segment struct {
	From, To Point
}

// ParseSegment parses a line of the form "x1,y1 -> x2,y2".
func ParseSegment(line string) (Segment, error) {
	from, to, ok := strings.Cut(line, "->")
	if !ok {
		return Segment{}, fmt.Errorf("missing '->' in %q", line)
	}
	p, err := parsePoint(from)
	if err != nil {
		return Segment{}, err
	}
	q, err := parsePoint(to)
	if err != nil {
		return Segment{}, err
	}
	return Segment{From: p, To: q}, nil
}

func parsePoint(s string) (Point, error) {
	coords, err := input.Ints[int](s, ",")
	if err != nil {
		return Point{}, err
	}
	if coords, err = aoc.Exactly(2, coords); err != nil {
		return Point{}, fmt.Errorf("point %q: %w", strings.TrimSpace(s), err)
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}

// IsAxisAligned is true for horizontal and vertical segments.
func (s Segment) IsAxisAligned() bool {
	return s.From.X == s.To.X || s.From.Y == s.To.Y
}

// Points enumerates all integer points on the segment. Steps are the
// direction vector divided by the gcd of its components, so only lattice
// points are visited.
func (s Segment) Points() []Point {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	g := aoc.GCD(dx, dy)
	if g == 0 {
		return []Point{s.From}
	}
	sx, sy := dx/g, dy/g
	points := make([]Point, 0, g+1)
	for i := 0; i <= g; i++ {
		points = append(points, Point{X: s.From.X + i*sx, Y: s.From.Y + i*sy})
	}
	return points
}

// Solve counts the points where at least two lines overlap, first for
// horizontal and vertical lines only, then for all lines.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var segments []Segment
	for i, line := range lines {
		if line == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		segments = append(segments, s)
	}
	var aligned []Segment
	for _, s := range segments {
		if s.IsAxisAligned() {
			aligned = append(aligned, s)
		}
	}
	tracer().Debugf("%d segments, %d axis-aligned", len(segments), len(aligned))
	return solver.Parts(overlaps(aligned), overlaps(segments)), nil
}

func overlaps(segments []Segment) int {
	var points []Point
	for _, s := range segments {
		points = append(points, s.Points()...)
	}
	n := 0
	for _, c := range aoc.Counts(points) {
		if c >= 2 {
			n++
		}
	}
	return n
}
