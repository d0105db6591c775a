// Package day22 solves "Reactor Reboot", day 22 of Advent of Code 2021.
//
// The whole reactor is far too large to be represented cube by cube. The
// reboot steps are instead turned into a list of signed cuboids: whenever a
// step overlaps a cuboid of the list, the overlap is added with the opposite
// sign, so that the signed volumes always add up to the number of cubes on.
package day22

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 22.
var Puzzle = solver.Puzzle{Day: 22, Title: "Reactor Reboot", Solve: Solve}

// tracer traces with key 'aoc.day22'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day22")
}

// Cuboid is an axis-aligned box of cubes, bounds included.
type Cuboid struct {
	Min, Max [3]int
}

// Volume is the number of cubes in c.
func (c Cuboid) Volume() int64 {
	v := int64(1)
	for i := range c.Min {
		v *= int64(c.Max[i] - c.Min[i] + 1)
	}
	return v
}

// Intersect returns the overlap of c and d, if any.
func (c Cuboid) Intersect(d Cuboid) (Cuboid, bool) {
	var x Cuboid
	for i := range c.Min {
		x.Min[i], x.Max[i] = max(c.Min[i], d.Min[i]), min(c.Max[i], d.Max[i])
		if x.Min[i] > x.Max[i] {
			return Cuboid{}, false
		}
	}
	return x, true
}

// Step is a single reboot step.
type Step struct {
	On     bool
	Cuboid Cuboid
}

var stepPattern = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// ParseStep parses a line like "on x=10..12,y=10..12,z=10..12".
func ParseStep(line string) (Step, error) {
	m := stepPattern.FindStringSubmatch(line)
	if m == nil {
		return Step{}, fmt.Errorf("invalid reboot step %q", line)
	}
	s := Step{On: m[1] == "on"}
	for axis := 0; axis < 3; axis++ {
		lo, err := input.ParseInt[int](m[2+2*axis])
		if err != nil {
			return Step{}, err
		}
		hi, err := input.ParseInt[int](m[3+2*axis])
		if err != nil {
			return Step{}, err
		}
		if lo > hi {
			return Step{}, fmt.Errorf("empty range %d..%d in %q", lo, hi, line)
		}
		s.Cuboid.Min[axis], s.Cuboid.Max[axis] = lo, hi
	}
	return s, nil
}

// initRegion is the region considered during initialization.
var initRegion = Cuboid{Min: [3]int{-50, -50, -50}, Max: [3]int{50, 50, 50}}

// Initialize executes the steps cube by cube within the initialization
// region and counts the cubes on.
func Initialize(steps []Step) int {
	const side = 101
	var cubes [side * side * side]bool
	for _, s := range steps {
		c, ok := s.Cuboid.Intersect(initRegion)
		if !ok {
			continue
		}
		for x := c.Min[0]; x <= c.Max[0]; x++ {
			for y := c.Min[1]; y <= c.Max[1]; y++ {
				for z := c.Min[2]; z <= c.Max[2]; z++ {
					cubes[((x+50)*side+y+50)*side+z+50] = s.On
				}
			}
		}
	}
	n := 0
	for _, on := range cubes {
		if on {
			n++
		}
	}
	return n
}

type signed struct {
	cuboid Cuboid
	sign   int64
}

// Reboot executes all steps and counts the cubes on.
func Reboot(steps []Step) int64 {
	var cuboids []signed
	for _, s := range steps {
		var overlaps []signed
		for _, c := range cuboids {
			if x, ok := s.Cuboid.Intersect(c.cuboid); ok {
				overlaps = append(overlaps, signed{cuboid: x, sign: -c.sign})
			}
		}
		cuboids = append(cuboids, overlaps...)
		if s.On {
			cuboids = append(cuboids, signed{cuboid: s.Cuboid, sign: 1})
		}
	}
	tracer().Debugf("%d signed cuboids", len(cuboids))
	var n int64
	for _, c := range cuboids {
		n += c.sign * c.cuboid.Volume()
	}
	return n
}

// Solve counts the cubes on after initialization and after the full reboot.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var steps []Step
	for i, line := range lines {
		if line == "" {
			continue
		}
		s, err := ParseStep(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return nil, errors.New("no reboot steps")
	}
	return solver.Parts(Initialize(steps), Reboot(steps)), nil
}
