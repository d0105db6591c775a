// Package day19 solves "Beacon Scanner", day 19 of Advent of Code 2021.
//
// Scanners report beacon positions relative to themselves, in one of 24
// unknown orientations. Scanner 0 defines the reference frame. Another
// scanner is placed once, for one of its orientations, at least 12 of its
// beacons coincide with beacons of an already placed scanner.
package day19

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/maybe"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 19.
var Puzzle = solver.Puzzle{Day: 19, Title: "Beacon Scanner", Solve: Solve}

// tracer traces with key 'aoc.day19'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day19")
}

// MinOverlap is the number of common beacons required to place a scanner.
const MinOverlap = 12

// Vec is a position or offset in 3-D space.
type Vec [3]int

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Manhattan is the taxicab distance between v and w.
func (v Vec) Manhattan(w Vec) int {
	d := v.Sub(w)
	return aoc.Abs(d[0]) + aoc.Abs(d[1]) + aoc.Abs(d[2])
}

// Rotation is a signed permutation matrix with determinant +1:
// component i of the result is Sign[i] · v[Axis[i]].
type Rotation struct {
	Axis [3]int
	Sign [3]int
}

// Apply rotates v.
func (r Rotation) Apply(v Vec) Vec {
	return Vec{r.Sign[0] * v[r.Axis[0]], r.Sign[1] * v[r.Axis[1]], r.Sign[2] * v[r.Axis[2]]}
}

// Rotations holds the 24 orientations of a cube, the identity first.
var Rotations = rotations()

func rotations() []Rotation {
	perms := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {2, 1, 0}, {1, 0, 2}}
	parity := []int{1, 1, 1, -1, -1, -1}
	var rots []Rotation
	for i, p := range perms {
		for s := 0; s < 8; s++ {
			sign := [3]int{1 - 2*(s&1), 1 - 2*(s>>1&1), 1 - 2*(s>>2&1)}
			if parity[i]*sign[0]*sign[1]*sign[2] == 1 {
				rots = append(rots, Rotation{Axis: p, Sign: sign})
			}
		}
	}
	return rots
}

// Scanner is the report of a single scanner.
type Scanner struct {
	ID      int
	Beacons []Vec
}

// ParseScanners reads blocks headed by "--- scanner N ---".
func ParseScanners(lines []string) ([]Scanner, error) {
	var scanners []Scanner
	for _, batch := range input.Batches(lines) {
		var s Scanner
		if _, err := fmt.Sscanf(batch[0], "--- scanner %d ---", &s.ID); err != nil {
			return nil, fmt.Errorf("invalid scanner header %q", batch[0])
		}
		for _, line := range batch[1:] {
			coords, err := input.Ints[int](line, ",")
			if err == nil {
				coords, err = aoc.Exactly(3, coords)
			}
			if err != nil {
				return nil, fmt.Errorf("scanner %d: beacon %q: %w", s.ID, line, err)
			}
			s.Beacons = append(s.Beacons, Vec{coords[0], coords[1], coords[2]})
		}
		scanners = append(scanners, s)
	}
	if len(scanners) == 0 {
		return nil, errors.New("no scanner reports")
	}
	return scanners, nil
}

// placement is a scanner's beacons in the reference frame, together with
// the scanner's position.
type placement struct {
	beacons []Vec
	pos     Vec
}

// align tries to express beacons in the frame of the reference beacons.
func align(reference, beacons []Vec) maybe.Maybe[placement] {
	for _, rot := range Rotations {
		rotated := make([]Vec, len(beacons))
		for i, b := range beacons {
			rotated[i] = rot.Apply(b)
		}
		offsets := make(map[Vec]int)
		for _, a := range reference {
			for _, b := range rotated {
				d := a.Sub(b)
				offsets[d]++
				if offsets[d] < MinOverlap {
					continue
				}
				for i := range rotated {
					rotated[i] = rotated[i].Add(d)
				}
				return maybe.Just(placement{beacons: rotated, pos: d})
			}
		}
	}
	return maybe.Nothing[placement]()
}

// Locate places all scanners relative to scanner 0. It returns the
// beacons of every scanner in the reference frame and the scanner positions.
func Locate(scanners []Scanner) ([][]Vec, []Vec, error) {
	n := len(scanners)
	absolute := make([][]Vec, n)
	positions := make([]Vec, n)
	placed := make([]bool, n)
	absolute[0], placed[0] = scanners[0].Beacons, true
	queue := []int{0}
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		for i := range scanners {
			if placed[i] {
				continue
			}
			var pl placement
			switch m := align(absolute[ref], scanners[i].Beacons).Match(); m {
			case m.Just(&pl):
				tracer().Debugf("scanner %d at %v, matched via scanner %d", scanners[i].ID, pl.pos, scanners[ref].ID)
				absolute[i], positions[i], placed[i] = pl.beacons, pl.pos, true
				queue = append(queue, i)
			case m.Nothing():
			}
		}
	}
	var missing []string
	for i, ok := range placed {
		if !ok {
			missing = append(missing, fmt.Sprint(scanners[i].ID))
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("cannot place scanners %s", strings.Join(missing, ", "))
	}
	return absolute, positions, nil
}

// Solve counts the distinct beacons and finds the largest Manhattan
// distance between any two scanners.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	scanners, err := ParseScanners(lines)
	if err != nil {
		return nil, err
	}
	absolute, positions, err := Locate(scanners)
	if err != nil {
		return nil, err
	}
	beacons := make(map[Vec]struct{})
	for _, bs := range absolute {
		for _, b := range bs {
			beacons[b] = struct{}{}
		}
	}
	dist := 0
	for _, p := range positions {
		for _, q := range positions {
			dist = max(dist, p.Manhattan(q))
		}
	}
	return solver.Parts(len(beacons), dist), nil
}
