// Package day03 solves "Binary Diagnostic", day 3 of Advent of Code 2021.
//
// The diagnostic report is a list of binary numbers of equal width.
package day03

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 3.
var Puzzle = solver.Puzzle{Day: 3, Title: "Binary Diagnostic", Solve: Solve}

// tracer traces with key 'aoc.day03'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day03")
}

// ErrNoMostCommonBit is returned if ones and zeros are equally frequent at
// some bit position when computing the gamma rate.
var ErrNoMostCommonBit = errors.New("no most common bit")

// Solve computes the power consumption (gamma rate × epsilon rate) and the
// life support rating (oxygen generator rating × CO2 scrubber rating).
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	report, err := parseReport(lines)
	if err != nil {
		return nil, err
	}
	gamma, epsilon, err := powerRates(report)
	if err != nil {
		return nil, err
	}
	oxygen, err := rating(report, true)
	if err != nil {
		return nil, fmt.Errorf("oxygen generator rating: %w", err)
	}
	co2, err := rating(report, false)
	if err != nil {
		return nil, fmt.Errorf("CO2 scrubber rating: %w", err)
	}
	tracer().Debugf("gamma=%d epsilon=%d oxygen=%d co2=%d", gamma, epsilon, oxygen, co2)
	return solver.Parts(gamma*epsilon, oxygen*co2), nil
}

func parseReport(lines []string) ([]string, error) {
	var report []string
	width := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		if width == 0 {
			width = len(line)
			if width > 63 {
				return nil, input.AtLine(i+1, fmt.Errorf("binary number too wide: %d bits", width))
			}
		} else if len(line) != width {
			return nil, input.AtLine(i+1, fmt.Errorf("expected %d bits, got %d", width, len(line)))
		}
		for _, c := range line {
			if c != '0' && c != '1' {
				return nil, input.AtLine(i+1, fmt.Errorf("invalid binary digit %q", c))
			}
		}
		report = append(report, line)
	}
	if len(report) == 0 {
		return nil, errors.New("empty diagnostic report")
	}
	return report, nil
}

func countOnes(numbers []string, pos int) int {
	n := 0
	for _, s := range numbers {
		if s[pos] == '1' {
			n++
		}
	}
	return n
}

func powerRates(report []string) (gamma, epsilon int64, err error) {
	width := len(report[0])
	for pos := 0; pos < width; pos++ {
		ones := countOnes(report, pos)
		zeros := len(report) - ones
		if ones == zeros {
			return 0, 0, fmt.Errorf("%w at position %d", ErrNoMostCommonBit, pos)
		}
		gamma <<= 1
		epsilon <<= 1
		if ones > zeros {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma, epsilon, nil
}

// rating filters the report bit by bit, keeping the numbers with the most
// common bit (ties keep '1') or the least common bit (ties keep '0').
func rating(report []string, mostCommon bool) (int64, error) {
	candidates := report
	for pos := 0; len(candidates) > 1 && pos < len(report[0]); pos++ {
		ones := countOnes(candidates, pos)
		onesDominate := 2*ones >= len(candidates)
		keep := byte('0')
		if onesDominate == mostCommon {
			keep = '1'
		}
		var next []string
		for _, s := range candidates {
			if s[pos] == keep {
				next = append(next, s)
			}
		}
		candidates = next
	}
	if len(candidates) != 1 {
		return 0, fmt.Errorf("%d candidates left after filtering", len(candidates))
	}
	return binary(candidates[0]), nil
}

func binary(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		v = v<<1 | int64(s[i]-'0')
	}
	return v
}
