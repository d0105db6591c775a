package day19

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shared = []Vec{
	{486, -812, 707}, {165, -653, 147}, {-492, -95, -189}, {183, -308, 297},
	{-597, 318, -366}, {-680, -367, -57}, {-230, -352, 809}, {-680, 683, -234},
	{-263, -854, 265}, {364, -488, 900}, {-756, -486, -667}, {210, 33, -105},
	{873, 602, -750}, {744, -699, -52},
}

var (
	only0 = []Vec{{-866, -697, 285}}
	only1 = []Vec{{590, -34, 647}, {846, -89, 1}}
)

func report(id int, beacons []Vec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- scanner %d ---\n", id)
	for _, v := range beacons {
		fmt.Fprintf(&b, "%d,%d,%d\n", v[0], v[1], v[2])
	}
	return b.String()
}

// seenFrom expresses absolute positions as a scanner at pos with
// orientation rot would report them.
func seenFrom(pos Vec, rot Rotation, absolute []Vec) []Vec {
	rel := make([]Vec, len(absolute))
	for i, v := range absolute {
		rel[i] = rot.Apply(v.Sub(pos))
	}
	return rel
}

func TestRotations(t *testing.T) {
	require.Len(t, Rotations, 24)
	assert.Equal(t, Vec{1, 2, 3}, Rotations[0].Apply(Vec{1, 2, 3}))
	images := make(map[Vec]bool)
	for _, r := range Rotations {
		images[r.Apply(Vec{1, 2, 3})] = true
	}
	assert.Len(t, images, 24)
}

func TestTwoScanners(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc.day19")
	defer teardown()
	//
	pos := Vec{68, -1246, -43}
	s0 := append(append([]Vec{}, shared...), only0...)
	s1 := seenFrom(pos, Rotations[13], append(append([]Vec{}, shared...), only1...))
	text := report(0, s0) + "\n" + report(1, s1)
	answers, err := Solve(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, solver.Parts(len(shared)+len(only0)+len(only1), 68+1246+43), answers)
}

func TestThreeScanners(t *testing.T) {
	pos1, pos2 := Vec{100, 0, -30}, Vec{-500, 20, 1000}
	scanners := []Scanner{
		{ID: 0, Beacons: shared},
		{ID: 1, Beacons: seenFrom(pos1, Rotations[5], shared)},
		{ID: 2, Beacons: seenFrom(pos2, Rotations[20], shared)},
	}
	_, positions, err := Locate(scanners)
	require.NoError(t, err)
	assert.Equal(t, []Vec{{}, pos1, pos2}, positions)
}

func TestUnplaceableScanner(t *testing.T) {
	scanners := []Scanner{
		{ID: 0, Beacons: shared},
		{ID: 7, Beacons: shared[:MinOverlap-1]},
	}
	_, _, err := Locate(scanners)
	assert.ErrorContains(t, err, "cannot place scanners 7")
}

func TestMalformedReport(t *testing.T) {
	_, err := ParseScanners([]string{"--- scanner 0 ---", "1,2"})
	assert.Error(t, err)
	_, err = ParseScanners([]string{"scanner zero", "1,2,3"})
	assert.Error(t, err)
}
