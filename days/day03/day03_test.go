package day03

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day03")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(198, 230), answers)
}

func TestRatings(t *testing.T) {
	report, err := parseReport(strings.Split(strings.TrimSpace(example), "\n"))
	require.NoError(t, err)
	oxygen, err := rating(report, true)
	require.NoError(t, err)
	assert.Equal(t, int64(23), oxygen)
	co2, err := rating(report, false)
	require.NoError(t, err)
	assert.Equal(t, int64(10), co2)
}

func TestTieInGamma(t *testing.T) {
	_, err := Solve(strings.NewReader("10\n01\n"))
	assert.True(t, errors.Is(err, ErrNoMostCommonBit))
}

func TestMalformedReport(t *testing.T) {
	_, err := Solve(strings.NewReader("101\n11\n"))
	assert.ErrorContains(t, err, "line 2")
	_, err = Solve(strings.NewReader("102\n"))
	assert.ErrorContains(t, err, "invalid binary digit")
	_, err = Solve(strings.NewReader(""))
	assert.Error(t, err)
}
