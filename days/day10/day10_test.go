package day10

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day10")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(26397, 288957), answers)
}

func TestCheck(t *testing.T) {
	status, illegal, _, err := Check("{([(<{}[<>[]}>{[]{[(<()>")
	require.NoError(t, err)
	assert.Equal(t, Corrupted, status)
	assert.Equal(t, byte('}'), illegal)
	status, _, completion, err := Check("[({(<(())[]>[[{[]{<()<>>")
	require.NoError(t, err)
	assert.Equal(t, Incomplete, status)
	assert.Equal(t, "}}]])})]", string(completion))
	assert.Equal(t, 288957, CompletionScore(completion))
	status, _, _, err = Check("<([]){()}[{}])")
	require.NoError(t, err)
	assert.Equal(t, Corrupted, status)
	status, _, _, err = Check("([]{<>})")
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	_, _, _, err = Check("(x)")
	assert.Error(t, err)
}
