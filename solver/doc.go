/*
Package solver provides the command line frame shared by all daily puzzle
executables.

Every day is described by a Puzzle, holding the day number and a function
which solves the puzzle for an input stream. NewCommand wraps a Puzzle into a
cobra command taking exactly one positional argument, the input path. The
input is opened, solved and closed; answers are printed to standard output
only after the complete computation succeeded, one line per part:

    Part 1 answer: 1390
    Part 2 answer: 1457

Answers spanning multiple lines (e.g., text rendered from dots) are announced
with "(see below)" and printed as a block.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package solver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aoc.solver'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.solver")
}
