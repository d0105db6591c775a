package solver

import (
	"fmt"
	"io"
	"strings"
)

// Answer is the result of one part of a puzzle.
type Answer struct {
	Part  int
	Value string
}

// Answers is the ordered list of results of a puzzle.
type Answers []Answer

// Parts numbers values from 1 upwards and renders them with fmt.Sprint.
func Parts(values ...interface{}) Answers {
	answers := make(Answers, len(values))
	for i, v := range values {
		answers[i] = Answer{Part: i + 1, Value: fmt.Sprint(v)}
	}
	return answers
}

// IsBlock is true for answers spanning more than one line.
func (a Answer) IsBlock() bool {
	return strings.Contains(strings.TrimRight(a.Value, "\n"), "\n")
}

// Print writes all answers to w.
func (answers Answers) Print(w io.Writer) error {
	for _, a := range answers {
		if a.IsBlock() {
			block := strings.TrimRight(a.Value, "\n")
			if _, err := fmt.Fprintf(w, "Part %d answer: (see below)\n%s\n", a.Part, block); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "Part %d answer: %s\n", a.Part, a.Value); err != nil {
			return err
		}
	}
	return nil
}
