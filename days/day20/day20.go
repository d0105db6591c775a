// Package day20 solves "Trench Map", day 20 of Advent of Code 2021.
//
// The image is infinite. Beyond the finite part all pixels share a single
// background value, which may flip with every enhancement step.
package day20

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 20.
var Puzzle = solver.Puzzle{Day: 20, Title: "Trench Map", Solve: Solve}

// tracer traces with key 'aoc.day20'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day20")
}

// ErrInfinite is returned when counting lit pixels on a lit background.
var ErrInfinite = errors.New("infinitely many pixels are lit")

// Algorithm maps a 9-bit neighbourhood index to the pixel's new value.
type Algorithm [512]bool

// ParseAlgorithm parses a line of 512 '#' and '.' characters.
func ParseAlgorithm(line string) (*Algorithm, error) {
	if len(line) != len(Algorithm{}) {
		return nil, fmt.Errorf("enhancement algorithm has %d entries, expected 512", len(line))
	}
	var alg Algorithm
	for i := 0; i < len(line); i++ {
		lit, err := pixel(line[i])
		if err != nil {
			return nil, err
		}
		alg[i] = lit
	}
	return &alg, nil
}

func pixel(c byte) (bool, error) {
	switch c {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, fmt.Errorf("invalid pixel %q", c)
}

// Image is a finite grid of pixels on an infinite uniform background.
type Image struct {
	pixels     *grid.Grid[bool]
	background bool
}

// ParseImage parses rows of '#' and '.'.
func ParseImage(lines []string) (Image, error) {
	rows := make([][]bool, len(lines))
	for i, line := range lines {
		rows[i] = make([]bool, len(line))
		for j := 0; j < len(line); j++ {
			lit, err := pixel(line[j])
			if err != nil {
				return Image{}, fmt.Errorf("image row %d: %w", i+1, err)
			}
			rows[i][j] = lit
		}
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		return Image{}, err
	}
	return Image{pixels: g}, nil
}

func (img Image) at(p grid.Pos) bool {
	if img.pixels.Contains(p) {
		return img.pixels.At(p)
	}
	return img.background
}

// Enhance applies the algorithm once. The finite part grows by one pixel
// in every direction.
func (img Image) Enhance(alg *Algorithm) Image {
	next := grid.New[bool](img.pixels.Rows()+2, img.pixels.Cols()+2)
	for _, p := range next.Positions() {
		center := p.Add(-1, -1)
		index := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				index <<= 1
				if img.at(center.Add(dr, dc)) {
					index |= 1
				}
			}
		}
		next.Set(p, alg[index])
	}
	bg := alg[0]
	if img.background {
		bg = alg[len(alg)-1]
	}
	return Image{pixels: next, background: bg}
}

// Lit counts the lit pixels.
func (img Image) Lit() (int, error) {
	if img.background {
		return 0, ErrInfinite
	}
	n := 0
	for _, p := range img.pixels.Positions() {
		if img.pixels.At(p) {
			n++
		}
	}
	return n, nil
}

// Solve counts the lit pixels after 2 and after 50 enhancement steps.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	batches := input.Batches(lines)
	if len(batches) != 2 || len(batches[0]) != 1 {
		return nil, errors.New("expected an algorithm line and an image")
	}
	alg, err := ParseAlgorithm(batches[0][0])
	if err != nil {
		return nil, err
	}
	img, err := ParseImage(batches[1])
	if err != nil {
		return nil, err
	}
	var counts []int
	for step := 1; step <= 50; step++ {
		img = img.Enhance(alg)
		if step == 2 || step == 50 {
			n, err := img.Lit()
			if err != nil {
				return nil, fmt.Errorf("after %d steps: %w", step, err)
			}
			counts = append(counts, n)
		}
	}
	tracer().Debugf("final image is %d×%d", img.pixels.Rows(), img.pixels.Cols())
	return solver.Parts(counts[0], counts[1]), nil
}
