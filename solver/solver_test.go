package solver

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadInput = errors.New("bad input")

// lineCounter answers with the number of lines and the first line.
var lineCounter = Puzzle{
	Day:   7,
	Title: "count lines",
	Solve: func(r io.Reader) (Answers, error) {
		lines, err := input.Lines(r)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, errBadInput
		}
		return Parts(len(lines), lines[0]), nil
	},
}

func writeInput(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "day07.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPrintAnswers(t *testing.T) {
	var buf bytes.Buffer
	answers := Answers{{Part: 1, Value: "17"}, {Part: 2, Value: "#.#\n.#.\n"}}
	require.NoError(t, answers.Print(&buf))
	assert.Equal(t, "Part 1 answer: 17\nPart 2 answer: (see below)\n#.#\n.#.\n", buf.String())
}

func TestParts(t *testing.T) {
	answers := Parts(42, int64(7), "x")
	require.Len(t, answers, 3)
	assert.Equal(t, Answer{Part: 3, Value: "x"}, answers[2])
	assert.False(t, answers[0].IsBlock())
}

func TestCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.solver")
	defer teardown()
	//
	path := writeInput(t, "first\nsecond\nthird\n")
	cmd := NewCommand(lineCounter)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Part 1 answer: 3\nPart 2 answer: first\n", out.String())
}

func TestCommandMissingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.solver")
	defer teardown()
	//
	cmd := NewCommand(lineCounter)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "day07.txt")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrInputNotFound))
	assert.Empty(t, out.String())
}

func TestCommandSolveFailurePrintsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.solver")
	defer teardown()
	//
	path := writeInput(t, "")
	cmd := NewCommand(lineCounter)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, errBadInput))
	assert.Empty(t, out.String())
}

func TestCommandArgs(t *testing.T) {
	cmd := NewCommand(lineCounter)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
	cmd = NewCommand(lineCounter)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"a", "b"})
	assert.Error(t, cmd.Execute())
	cmd = NewCommand(lineCounter)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--trace", "verbose", writeInput(t, "x\n")})
	assert.Error(t, cmd.Execute())
}

func TestParseTraceLevel(t *testing.T) {
	l, err := ParseTraceLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelDebug, l)
	l, err = ParseTraceLevel("")
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelError, l)
	_, err = ParseTraceLevel("loud")
	assert.Error(t, err)
}

func TestPuzzleNames(t *testing.T) {
	assert.Equal(t, "day07", lineCounter.Name())
	assert.Equal(t, "aoc.day07", lineCounter.TraceKey())
}

func TestCommandTracesToErrorOutput(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	//
	path := writeInput(t, "first\nsecond\n")
	cmd := NewCommand(lineCounter)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--trace", "debug", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Part 1 answer: 2\nPart 2 answer: first\n", out.String())
	assert.Contains(t, errOut.String(), "solving day07 for input "+path)
	assert.Contains(t, errOut.String(), "read 2 lines of input")
}

func TestCommandQuietAtErrorLevel(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	//
	cmd := NewCommand(lineCounter)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{writeInput(t, "first\n")})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, errOut.String())
}

func TestTraceSelectorLevelsPerKey(t *testing.T) {
	var buf bytes.Buffer
	sel := NewTraceSelector(&buf)
	assert.Same(t, sel.Select("aoc.day01"), sel.Select("aoc.day01"))
	sel.Select("aoc.day01").SetTraceLevel(tracing.LevelDebug)
	sel.Select("aoc.day02").Debugf("hidden")
	assert.Empty(t, buf.String())
	sel.Select("aoc.day01").Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
	assert.Equal(t, tracing.LevelError, sel.Select("aoc.day02").GetTraceLevel())
}
