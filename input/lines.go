package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineError reports a format violation in a given line of input.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AtLine wraps err with a line number. A nil err stays nil.
func AtLine(line int, err error) error {
	if err == nil {
		return nil
	}
	return &LineError{Line: line, Err: err}
}

// Lines reads all lines from r, trimming surrounding white space.
// Trailing blank lines are dropped, blank lines in between are kept.
func Lines(r io.Reader) ([]string, error) {
	return readLines(r, strings.TrimSpace)
}

// RawLines reads all lines from r like Lines, but strips only the line
// terminators ("\n" or "\r\n"). Trailing blank lines are dropped.
func RawLines(r io.Reader) ([]string, error) {
	return readLines(r, func(s string) string { return s })
}

func readLines(r io.Reader, clean func(string) string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, clean(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read a line of string: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	tracer().Debugf("read %d lines of input", len(lines))
	return lines, nil
}

// Batches splits lines into groups separated by blank lines.
// Blank lines are not part of any batch; runs of blank lines do not
// produce empty batches.
func Batches(lines []string) [][]string {
	var batches [][]string
	var batch []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(batch) > 0 {
				batches = append(batches, batch)
				batch = nil
			}
			continue
		}
		batch = append(batch, line)
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}
	return batches
}
