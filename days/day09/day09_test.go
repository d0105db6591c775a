package day09

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day09")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(15, 1134), answers)
}

func TestBasins(t *testing.T) {
	hm, err := ParseHeightmap(strings.NewReader(example))
	require.NoError(t, err)
	lows := LowPoints(hm)
	require.Len(t, lows, 4)
	assert.Equal(t, grid.Pos{Row: 0, Col: 1}, lows[0])
	assert.Equal(t, 3, BasinSize(hm, lows[0]))
	assert.Equal(t, 9, BasinSize(hm, lows[1]))
}

func TestRaggedHeightmap(t *testing.T) {
	_, err := Solve(strings.NewReader("123\n45\n"))
	assert.ErrorIs(t, err, grid.ErrRaggedRows)
}
