package day08

import (
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const single = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

const example = `be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

func TestSingleEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day08")
	defer teardown()
	//
	e, err := ParseEntry(single)
	require.NoError(t, err)
	v, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
	table, err := e.Decode()
	require.NoError(t, err)
	p, _ := ParsePattern("cagedb")
	assert.Equal(t, 0, table[p])
	p, _ = ParsePattern("cefabd")
	assert.Equal(t, 9, table[p])
}

func TestExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day08")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(26, 61229), answers)
}

func TestMalformedEntry(t *testing.T) {
	_, err := ParseEntry("ab cd | ef")
	assert.Error(t, err)
	_, err = ParsePattern("abz")
	assert.Error(t, err)
	_, err = Solve(strings.NewReader("a b c d e f g h i j | a b c d\n"))
	assert.ErrorContains(t, err, "line 1")
}
