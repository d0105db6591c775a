/*
Package input implements input acquisition and line-level parsing shared by
all daily puzzle solvers.

A puzzle input is a plain UTF-8 text file, named on the command line. The
special name "-" (or no name at all) denotes standard input. Format specifics
differ from day to day; this package provides the recurring pieces: reading
trimmed lines, splitting them into blank-line separated batches, and parsing
integer tokens with descriptive errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package input

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aoc.input'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.input")
}
