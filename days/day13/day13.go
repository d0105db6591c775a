// Package day13 solves "Transparent Origami", day 13 of Advent of Code 2021.
package day13

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 13.
var Puzzle = solver.Puzzle{Day: 13, Title: "Transparent Origami", Solve: Solve}

// tracer traces with key 'aoc.day13'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day13")
}

// Dot is a marked position on the transparent paper.
type Dot struct {
	X, Y int
}

// Fold is a fold instruction along a line x=At or y=At.
type Fold struct {
	Axis byte // 'x' or 'y'
	At   int
}

// Paper is a set of dots.
type Paper map[Dot]struct{}

// Apply folds the paper, returning a new set of dots. Dots beyond the fold
// line are mirrored onto the upper or left half; dots on the line vanish.
func (paper Paper) Apply(f Fold) Paper {
	folded := make(Paper, len(paper))
	for d := range paper {
		switch {
		case f.Axis == 'x' && d.X > f.At:
			d.X = 2*f.At - d.X
		case f.Axis == 'y' && d.Y > f.At:
			d.Y = 2*f.At - d.Y
		case f.Axis == 'x' && d.X == f.At, f.Axis == 'y' && d.Y == f.At:
			continue
		}
		folded[d] = struct{}{}
	}
	return folded
}

// Render draws the dots as '#' on a background of '.', one line per row.
func (paper Paper) Render() string {
	if len(paper) == 0 {
		return ""
	}
	xs, ys := make([]int, 0, len(paper)), make([]int, 0, len(paper))
	for d := range paper {
		xs, ys = append(xs, d.X), append(ys, d.Y)
	}
	minX, maxX, _ := aoc.MinMax(xs)
	minY, maxY, _ := aoc.MinMax(ys)
	minX, minY = min(minX, 0), min(minY, 0)
	sheet := grid.New[bool](maxY-minY+1, maxX-minX+1)
	for d := range paper {
		sheet.Set(grid.Pos{Row: d.Y - minY, Col: d.X - minX}, true)
	}
	return sheet.Format(func(dot bool) string {
		if dot {
			return "#"
		}
		return "."
	})
}

// Parse reads dots, a blank line, and fold instructions.
func Parse(lines []string) (Paper, []Fold, error) {
	batches := input.Batches(lines)
	if len(batches) != 2 {
		return nil, nil, errors.New("expected a block of dots and a block of folds")
	}
	paper := make(Paper)
	for _, line := range batches[0] {
		coords, err := input.Ints[int](line, ",")
		if err == nil {
			coords, err = aoc.Exactly(2, coords)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("dot %q: %w", line, err)
		}
		paper[Dot{X: coords[0], Y: coords[1]}] = struct{}{}
	}
	var folds []Fold
	for _, line := range batches[1] {
		instr, ok := strings.CutPrefix(line, "fold along ")
		axis, at, ok2 := strings.Cut(instr, "=")
		if !ok || !ok2 || (axis != "x" && axis != "y") {
			return nil, nil, fmt.Errorf("invalid fold instruction %q", line)
		}
		n, err := input.ParseInt[int](at)
		if err != nil {
			return nil, nil, err
		}
		folds = append(folds, Fold{Axis: axis[0], At: n})
	}
	return paper, folds, nil
}

// Solve counts the dots visible after the first fold and renders the code
// shown after all folds.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	paper, folds, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	if len(folds) == 0 {
		return nil, errors.New("no fold instructions")
	}
	first := paper.Apply(folds[0])
	for _, f := range folds {
		paper = paper.Apply(f)
	}
	code := paper.Render()
	tracer().Debugf("code:\n%s", code)
	return solver.Parts(len(first), code), nil
}
