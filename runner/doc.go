/*
Package runner implements the helper which starts the right day executable
for an input file.

Input files are expected to be named after their day, e.g. "day07.txt" or
"day07-example.txt". The day is derived from the pattern "day" followed by
exactly two digits at the start of the file's base name. The executable for
the day is taken from a directory of pre-built binaries if present; otherwise
it is compiled and started with "go run ./cmd/dayNN". Either way, the exit
code of the day executable is passed through.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aoc.runner'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.runner")
}
