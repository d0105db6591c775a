package day04

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day04")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(4512, 1924), answers)
}

func TestColumnWins(t *testing.T) {
	b, err := ParseBoard([]string{"1 2 3 4 5", "6 7 8 9 10", "11 12 13 14 15", "16 17 18 19 20", "21 22 23 24 25"})
	require.NoError(t, err)
	for _, n := range []int{3, 8, 13, 18} {
		assert.True(t, b.Mark(n).IsNothing())
	}
	score, ok := b.Mark(23).Get()
	require.True(t, ok)
	assert.Equal(t, (325-3-8-13-18-23)*23, score)
	assert.True(t, b.Mark(1).IsNothing(), "a board wins only once")
}

func TestMalformedBoard(t *testing.T) {
	_, err := ParseBoard([]string{"1 2 3 4 5"})
	assert.ErrorContains(t, err, "smaller than the target size 5")
	_, err = ParseBoard([]string{"1 2 3 4 5 6", "1 2 3 4 5", "1 2 3 4 5", "1 2 3 4 5", "1 2 3 4 5"})
	assert.ErrorContains(t, err, "over the target size 5")
}

func TestNoWinner(t *testing.T) {
	in := "99\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n"
	_, err := Solve(strings.NewReader(in))
	assert.True(t, errors.Is(err, ErrNoWinner))
}
