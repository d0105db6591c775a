/*
Package snailfish implements snailfish numbers: binary trees of non-negative
integers, written as arbitrarily nested bracketed pairs like

    [[1,2],[[3,4],5]]

A snailfish number is a Node, which is either a Leaf holding an integer or
a Branch holding an ordered pair of child nodes. Nodes are immutable values.
Every operation of this package (parsing, addition, reduction) constructs new
trees bottom-up and never modifies its arguments; sub-trees may be shared
between the argument and the result.

Parsing follows the grammar

    Expr   ::= "[" Expr "," Expr "]"
             | Number
    Number ::= digit+

with a recursive-descent parser. The grammar is LL(1), so parsing needs
neither look-ahead beyond the next character nor backtracking. Recursion
depth equals the nesting depth of the input, which is not bounded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package snailfish

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aoc.snailfish'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.snailfish")
}

// assertThat panics if a condition does not hold.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("snailfish: "+msg, msgargs...)
		panic(msg)
	}
}
