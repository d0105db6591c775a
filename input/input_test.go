package input

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	x, err := ParseInt[int64]("-37")
	require.NoError(t, err)
	assert.Equal(t, int64(-37), x)

	y, err := ParseInt[uint]("683")
	require.NoError(t, err)
	assert.Equal(t, uint(683), y)

	_, err = ParseInt[int]("abc")
	assert.EqualError(t, err, "cannot parse token for type int: abc")
	_, err = ParseInt[uint32]("-3")
	assert.EqualError(t, err, "cannot parse token for type uint32: -3")
	_, err = ParseInt[int8]("300")
	assert.Error(t, err)
}

func TestInts(t *testing.T) {
	v, err := Ints[int]("3, 4,3,1 ,2", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 3, 1, 2}, v)

	w, err := Ints[int]("22 13  17 11  0", "")
	require.NoError(t, err)
	assert.Equal(t, []int{22, 13, 17, 11, 0}, w)

	_, err = Ints[int]("1,,2", ",")
	assert.Error(t, err)
}

func TestDigits(t *testing.T) {
	d, err := Digits("2199943210")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 9, 9, 9, 4, 3, 2, 1, 0}, d)
	_, err = Digits("12a")
	assert.Error(t, err)
}

func TestLinesAndBatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.input")
	defer teardown()
	//
	lines, err := Lines(strings.NewReader("7,4,9\n\n 22 13\n 8 2\n\n\n1 2\n3 4\n\n"))
	require.NoError(t, err)
	assert.Len(t, lines, 8)
	batches := Batches(lines)
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"7,4,9"}, batches[0])
	assert.Equal(t, []string{"22 13", "8 2"}, batches[1])
	assert.Equal(t, []string{"1 2", "3 4"}, batches[2])
}

func TestRawLines(t *testing.T) {
	lines, err := RawLines(strings.NewReader(" a \r\n\tb\n\n  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{" a ", "\tb"}, lines)
}

func TestLineError(t *testing.T) {
	cause := errors.New("bad token")
	err := AtLine(3, cause)
	assert.EqualError(t, err, "line 3: bad token")
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, AtLine(3, nil))
}

func TestSourceOpen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.input")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("199\n200\n"), 0o644))

	rc, err := FromArg(path).Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "199\n200\n", string(data))

	_, err = FromArg(filepath.Join(dir, "missing.txt")).Open()
	assert.ErrorIs(t, err, ErrInputNotFound)
	_, err = FromArg(dir).Open()
	assert.ErrorIs(t, err, ErrInputNotFound)

	assert.True(t, FromArg("-").IsStdin())
	assert.True(t, FromArg("").IsStdin())
	assert.Equal(t, "<stdin>", FromArg("-").String())
}
