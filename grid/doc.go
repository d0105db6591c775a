/*
Package grid implements a generic two-dimensional grid of fixed size.

Grids are addressed by row and column, both zero-based. Neighbour
enumeration is clipped to the extent of the grid, so clients never have to
check bounds themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aoc.grid'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.grid")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("grid: "+msg, msgargs...)
		panic(msg)
	}
}
