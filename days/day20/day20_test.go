package day20

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const image = `#..#.
#....
##..#
..#..
..###`

// algorithm renders 512 entries, lit where lit(index) holds.
func algorithm(lit func(int) bool) string {
	var b strings.Builder
	for i := 0; i < 512; i++ {
		if lit(i) {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func center(i int) bool { return i&16 != 0 }

func TestIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day20")
	defer teardown()
	//
	answers, err := Solve(strings.NewReader(algorithm(center) + "\n\n" + image + "\n"))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(10, 10), answers)
}

func TestShift(t *testing.T) {
	alg, err := ParseAlgorithm(algorithm(func(i int) bool { return i == 1 }))
	require.NoError(t, err)
	img, err := ParseImage([]string{"#"})
	require.NoError(t, err)
	img = img.Enhance(alg)
	assert.Equal(t, "truefalsefalse\nfalsefalsefalse\nfalsefalsefalse\n", img.pixels.String())
	n, err := img.Lit()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFlickeringBackground(t *testing.T) {
	flicker := func(i int) bool { return i == 0 || (i != 511 && center(i)) }
	answers, err := Solve(strings.NewReader(algorithm(flicker) + "\n\n" + image + "\n"))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(42, 5610), answers)
}

func TestLitBackground(t *testing.T) {
	lit := func(i int) bool { return i == 0 || i == 511 }
	_, err := Solve(strings.NewReader(algorithm(lit) + "\n\n" + image + "\n"))
	assert.True(t, errors.Is(err, ErrInfinite))
}

func TestMalformedAlgorithm(t *testing.T) {
	_, err := ParseAlgorithm("#.#")
	assert.Error(t, err)
	_, err = ParseAlgorithm(strings.Repeat("x", 512))
	assert.Error(t, err)
}
