// Package day17 solves "Trick Shot", day 17 of Advent of Code 2021.
//
// The search for initial velocities is bounded analytically. A probe
// launched with horizontal velocity v travels at most v(v+1)/2; a probe
// launched upwards with vertical velocity v passes height 0 again with
// velocity -(v+1).
package day17

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 17.
var Puzzle = solver.Puzzle{Day: 17, Title: "Trick Shot", Solve: Solve}

// tracer traces with key 'aoc.day17'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day17")
}

// ErrUnbounded is returned for target areas which infinitely many initial
// velocities would hit.
var ErrUnbounded = errors.New("unbounded set of feasible velocities")

// Rect is an axis-aligned rectangle, bounds included.
type Rect struct {
	X0, X1, Y0, Y1 int
}

// Contains is true if (x,y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

var targetPattern = regexp.MustCompile(`^\s*target\s+area:\s*x=(-?\d+)\.\.(-?\d+)\s*,\s*y=(-?\d+)\.\.(-?\d+)\s*$`)

// ParseTarget parses "target area: x=20..30, y=-10..-5".
func ParseTarget(line string) (Rect, error) {
	m := targetPattern.FindStringSubmatch(line)
	if m == nil {
		return Rect{}, fmt.Errorf("invalid target area %q", line)
	}
	var coords [4]int
	for i := range coords {
		v, err := input.ParseInt[int](m[i+1])
		if err != nil {
			return Rect{}, err
		}
		coords[i] = v
	}
	r := Rect{X0: coords[0], X1: coords[1], Y0: coords[2], Y1: coords[3]}
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return Rect{}, fmt.Errorf("conflicting ranges in target area %q", line)
	}
	return r, nil
}

// travel is the distance covered by a probe with initial speed v until it
// comes to rest.
func travel(v int) int {
	return v * (v + 1) / 2
}

// minSpeed is the least speed v with travel(v) ≥ dist.
func minSpeed(dist int) int {
	assertThat(dist >= 0, "negative distance %d", dist)
	v := int(math.Ceil(math.Sqrt(2*float64(dist)+0.25) - 0.5))
	for v > 0 && travel(v-1) >= dist {
		v--
	}
	for travel(v) < dist {
		v++
	}
	return v
}

// Velocities returns the rectangle of initial velocities worth testing.
func Velocities(target Rect) (Rect, error) {
	var v Rect
	switch {
	case target.X0 > 0:
		v.X0, v.X1 = minSpeed(target.X0), target.X1
	case target.X1 < 0:
		v.X0, v.X1 = target.X0, -minSpeed(-target.X1)
	default:
		v.X0, v.X1 = target.X0, target.X1
	}
	switch {
	case target.Y0 > 0:
		v.Y0, v.Y1 = minSpeed(target.Y0), target.Y1
	case target.Y1 < 0:
		v.Y0, v.Y1 = target.Y0, -target.Y0-1
	default:
		// the probe passes height 0 after any upward launch
		if target.X0 <= 0 && 0 <= target.X1 {
			return v, ErrUnbounded
		}
		near := min(aoc.Abs(target.X0), aoc.Abs(target.X1))
		far := max(aoc.Abs(target.X0), aoc.Abs(target.X1))
		if travel(minSpeed(near)) <= far {
			return v, ErrUnbounded
		}
		v.Y0, v.Y1 = target.Y0, max(target.Y1, -target.Y0-1, far)
	}
	return v, nil
}

// Hits simulates a probe launched with velocity (vx,vy).
func Hits(target Rect, vx, vy int) bool {
	x, y := 0, 0
	for {
		x, y = x+vx, y+vy
		vx -= aoc.Sign(vx)
		vy--
		if target.Contains(x, y) {
			return true
		}
		if vy < 0 && y < target.Y0 {
			return false
		}
		if vx == 0 && (x < target.X0 || x > target.X1) {
			return false
		}
	}
}

// Solve finds the highest point reachable by a probe hitting the target,
// and the number of initial velocities hitting it.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("missing target area")
	}
	target, err := ParseTarget(lines[0])
	if err != nil {
		return nil, err
	}
	vs, err := Velocities(target)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("testing velocities %+v", vs)
	peak, count := math.MinInt, 0
	for vx := vs.X0; vx <= vs.X1; vx++ {
		for vy := vs.Y0; vy <= vs.Y1; vy++ {
			if Hits(target, vx, vy) {
				count++
				peak = max(peak, travel(max(vy, 0)))
			}
		}
	}
	if count == 0 {
		return nil, errors.New("no initial velocity hits the target area")
	}
	return solver.Parts(peak, count), nil
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf("day17: "+msg, msgargs...))
	}
}
