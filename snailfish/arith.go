package snailfish

import "errors"

// ErrEmptySum is returned by Sum for an empty list of numbers.
var ErrEmptySum = errors.New("cannot sum an empty list of snailfish numbers")

const (
	explodeDepth = 4  // pairs nested inside this many pairs explode
	splitLimit   = 10 // regular numbers of at least this value split
)

// Add forms the pair [a,b] and reduces it. Neither a nor b is modified.
func Add(a, b Node) Node {
	assertThat(a != nil && b != nil, "snailfish addition of nil operand")
	return Reduce(Branch{Left: a, Right: b})
}

// Sum adds numbers from left to right.
func Sum(numbers ...Node) (Node, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptySum
	}
	acc := numbers[0]
	for _, n := range numbers[1:] {
		acc = Add(acc, n)
	}
	return acc, nil
}

// Reduce applies reduction steps until none applies any more. A step is
// either the explosion of the leftmost pair nested inside four pairs or, if
// no pair explodes, the split of the leftmost regular number of 10 or more.
func Reduce(n Node) Node {
	steps := 0
	for {
		if next, ok := explode(n, 0); ok {
			n = next.node
		} else if m, ok := split(n); ok {
			n = m
		} else {
			break
		}
		steps++
	}
	tracer().Debugf("reduced to %s in %d steps", n, steps)
	return n
}

// Magnitude is 3 times the magnitude of the left element plus 2 times the
// magnitude of the right element. A leaf's magnitude is its value.
func Magnitude(n Node) int64 {
	switch x := n.(type) {
	case Leaf:
		return x.Value
	case Branch:
		return 3*Magnitude(x.Left) + 2*Magnitude(x.Right)
	}
	panic("snailfish: unknown node type")
}

// explosion carries the rebuilt tree and the values still to be added to
// the nearest regular numbers left and right of the exploded pair.
type explosion struct {
	node        Node
	left, right int64
}

func explode(n Node, depth int) (explosion, bool) {
	b, ok := n.(Branch)
	if !ok {
		return explosion{}, false
	}
	if depth >= explodeDepth {
		l, lok := b.Left.(Leaf)
		r, rok := b.Right.(Leaf)
		if lok && rok {
			return explosion{node: Leaf{Value: 0}, left: l.Value, right: r.Value}, true
		}
	}
	if e, ok := explode(b.Left, depth+1); ok {
		return explosion{
			node: Branch{Left: e.node, Right: addLeftmost(b.Right, e.right)},
			left: e.left,
		}, true
	}
	if e, ok := explode(b.Right, depth+1); ok {
		return explosion{
			node:  Branch{Left: addRightmost(b.Left, e.left), Right: e.node},
			right: e.right,
		}, true
	}
	return explosion{}, false
}

func addLeftmost(n Node, v int64) Node {
	if v == 0 {
		return n
	}
	switch x := n.(type) {
	case Leaf:
		return Leaf{Value: x.Value + v}
	case Branch:
		return Branch{Left: addLeftmost(x.Left, v), Right: x.Right}
	}
	return n
}

func addRightmost(n Node, v int64) Node {
	if v == 0 {
		return n
	}
	switch x := n.(type) {
	case Leaf:
		return Leaf{Value: x.Value + v}
	case Branch:
		return Branch{Left: x.Left, Right: addRightmost(x.Right, v)}
	}
	return n
}

func split(n Node) (Node, bool) {
	switch x := n.(type) {
	case Leaf:
		if x.Value >= splitLimit {
			return Branch{
				Left:  Leaf{Value: x.Value / 2},
				Right: Leaf{Value: (x.Value + 1) / 2},
			}, true
		}
	case Branch:
		if l, ok := split(x.Left); ok {
			return Branch{Left: l, Right: x.Right}, true
		}
		if r, ok := split(x.Right); ok {
			return Branch{Left: x.Left, Right: r}, true
		}
	}
	return n, false
}
