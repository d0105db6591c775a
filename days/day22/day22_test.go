package day22

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13
off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day22")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(39, 39), answers)
}

func TestOutsideInitRegion(t *testing.T) {
	in := example + "on x=-100..-60,y=0..0,z=0..0\noff x=-70..-48,y=0..0,z=0..0\n"
	answers, err := Solve(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(39, 39+41-11), answers)
}

func TestIntersect(t *testing.T) {
	a := Cuboid{Min: [3]int{0, 0, 0}, Max: [3]int{9, 9, 9}}
	b := Cuboid{Min: [3]int{5, -5, 9}, Max: [3]int{20, 5, 20}}
	x, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, Cuboid{Min: [3]int{5, 0, 9}, Max: [3]int{9, 5, 9}}, x)
	assert.Equal(t, int64(5*6*1), x.Volume())
	_, ok = a.Intersect(Cuboid{Min: [3]int{10, 0, 0}, Max: [3]int{12, 9, 9}})
	assert.False(t, ok)
}

func TestMalformedStep(t *testing.T) {
	_, err := ParseStep("toggle x=1..2,y=1..2,z=1..2")
	assert.Error(t, err)
	_, err = ParseStep("on x=3..2,y=1..2,z=1..2")
	assert.Error(t, err)
	_, err = Solve(strings.NewReader("on x=1..2,y=1..2\n"))
	assert.ErrorContains(t, err, "line 1")
}
