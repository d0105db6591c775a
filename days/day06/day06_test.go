package day06

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day06")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader("3,4,3,1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(int64(5934), int64(26984457539)), answers)
}

func TestSchoolAfter18Days(t *testing.T) {
	school, err := NewSchool([]int{3, 4, 3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(26), school.After(18).Total())
	assert.Equal(t, int64(5), school.Total())
}

func TestAttributeOutOfRange(t *testing.T) {
	_, err := Solve(strings.NewReader("3,9\n"))
	assert.ErrorContains(t, err, "exceeds limit of 8")
}
