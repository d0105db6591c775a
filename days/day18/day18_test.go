package day18

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/snailfish"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homework = `[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day18")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(homework))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(4140, 3993), answers)
}

func TestLargestPair(t *testing.T) {
	a := snailfish.MustParse("[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]")
	b := snailfish.MustParse("[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]")
	m, err := LargestPairMagnitude([]snailfish.Node{a, b})
	require.NoError(t, err)
	assert.Equal(t, int64(3993), m)
	_, err = LargestPairMagnitude([]snailfish.Node{a})
	assert.Error(t, err)
}

func TestParseErrorLine(t *testing.T) {
	_, err := Solve(strings.NewReader("[1,2]\n[3,4\n"))
	var lerr *input.LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Line)
	var perr *snailfish.ParseError
	assert.True(t, errors.As(err, &perr))
	_, err = Solve(strings.NewReader("[1,2]\n[3,18446744073709551616]\n"))
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestRejectsBlanksAroundNumbers(t *testing.T) {
	for _, in := range []string{"[1,2]\n [3,4]\n", "[1,2]\n[3,4] \n", "[1,2]\n[3,4]\t\n"} {
		_, err := Solve(strings.NewReader(in))
		var lerr *input.LineError
		require.True(t, errors.As(err, &lerr), "%q", in)
		assert.Equal(t, 2, lerr.Line, "%q", in)
		var perr *snailfish.ParseError
		assert.True(t, errors.As(err, &perr), "%q", in)
	}
	answers, err := Solve(strings.NewReader("[1,2]\r\n[[3,4],5]\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(143, 197), answers)
}
