package day11

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day11")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(1656, 195), answers)
}

func TestSmallCascade(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 1, 1, 1},
		{1, 9, 9, 9, 1},
		{1, 9, 1, 9, 1},
		{1, 9, 9, 9, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 9, Step(g))
	assert.Equal(t, "34543\n40004\n50005\n40004\n34543\n", g.String())
	assert.Equal(t, 0, Step(g))
	assert.Equal(t, "45654\n51115\n61116\n51115\n45654\n", g.String())
}
