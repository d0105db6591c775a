// Package day02 solves "Dive!", day 2 of Advent of Code 2021.
package day02

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 2.
var Puzzle = solver.Puzzle{Day: 2, Title: "Dive!", Solve: Solve}

// tracer traces with key 'aoc.day02'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day02")
}

// Direction of a submarine command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

var directions = map[string]Direction{"forward": Forward, "down": Down, "up": Up}

// Command is a single course instruction, e.g. "forward 5".
type Command struct {
	Dir   Direction
	Units int
}

// ParseCommand parses a line of the planned course.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("expected direction and units, got %q", line)
	}
	dir, ok := directions[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("unknown direction %q", fields[0])
	}
	units, err := input.ParseInt[int](fields[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Dir: dir, Units: units}, nil
}

type position struct {
	horizontal, depth, aim int
}

// Solve multiplies the final horizontal position and depth, first with
// up/down changing the depth directly, then with up/down changing the aim.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var simple, aimed position
	for i, line := range lines {
		if line == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		simple = simple.move(cmd)
		aimed = aimed.steer(cmd)
	}
	tracer().Debugf("final positions: %+v, %+v", simple, aimed)
	return solver.Parts(simple.horizontal*simple.depth, aimed.horizontal*aimed.depth), nil
}

func (p position) move(cmd Command) position {
	switch cmd.Dir {
	case Forward:
		p.horizontal += cmd.Units
	case Down:
		p.depth += cmd.Units
	case Up:
		p.depth -= cmd.Units
	}
	return p
}

func (p position) steer(cmd Command) position {
	switch cmd.Dir {
	case Forward:
		p.horizontal += cmd.Units
		p.depth += p.aim * cmd.Units
	case Down:
		p.aim += cmd.Units
	case Up:
		p.aim -= cmd.Units
	}
	return p
}
