package snailfish

import (
	"strconv"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Node is either a Leaf or a Branch. The set of implementations is closed.
type Node interface {
	String() string
	isNode()
}

// Leaf is a regular number.
type Leaf struct {
	Value int64
}

// Branch is a pair of snailfish numbers.
type Branch struct {
	Left, Right Node
}

func (Leaf) isNode()   {}
func (Branch) isNode() {}

// Pair creates a Branch from two nodes.
func Pair(left, right Node) Node {
	return Branch{Left: left, Right: right}
}

// String renders a leaf as its decimal digits.
func (l Leaf) String() string {
	return strconv.FormatInt(l.Value, 10)
}

// String renders a branch in bracket notation, without white space.
// For every well-formed input s, Parse(s).String() == s.
func (b Branch) String() string {
	var sb strings.Builder
	b.render(&sb)
	return sb.String()
}

func (b Branch) render(sb *strings.Builder) {
	sb.WriteByte('[')
	renderNode(sb, b.Left)
	sb.WriteByte(',')
	renderNode(sb, b.Right)
	sb.WriteByte(']')
}

func renderNode(sb *strings.Builder, n Node) {
	switch x := n.(type) {
	case Leaf:
		sb.WriteString(x.String())
	case Branch:
		x.render(sb)
	}
}

// Depth returns the nesting depth of n, i.e. the number of bracket pairs
// enclosing its deepest leaf. A leaf has depth 0.
func Depth(n Node) int {
	if b, ok := n.(Branch); ok {
		return 1 + max(Depth(b.Left), Depth(b.Right))
	}
	return 0
}

// Leaves returns the values of all leaves of n, from left to right.
func Leaves(n Node) []int64 {
	var values []int64
	var walk func(Node)
	walk = func(n Node) {
		switch x := n.(type) {
		case Leaf:
			values = append(values, x.Value)
		case Branch:
			walk(x.Left)
			walk(x.Right)
		}
	}
	walk(n)
	return values
}

// --- Print tree ------------------------------------------------------------

// Dump renders n as an indented tree, for debugging.
func Dump(n Node) string {
	printer := tp.New()
	dumpNode(printer, n)
	return printer.String()
}

func dumpNode(printer tp.Tree, n Node) {
	switch x := n.(type) {
	case Leaf:
		printer.AddNode(x.Value)
	case Branch:
		branch := printer.AddBranch("·")
		dumpNode(branch, x.Left)
		dumpNode(branch, x.Right)
	}
}
