// Package day04 solves "Giant Squid", day 4 of Advent of Code 2021.
//
// The input starts with a line of comma-separated draws, followed by 5×5
// bingo boards separated by blank lines.
package day04

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/maybe"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 4.
var Puzzle = solver.Puzzle{Day: 4, Title: "Giant Squid", Solve: Solve}

// tracer traces with key 'aoc.day04'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day04")
}

// Size is the number of rows and columns of a board.
const Size = 5

// ErrNoWinner is returned if the draws are exhausted before any board wins.
var ErrNoWinner = errors.New("no board wins")

// Board is a bingo board.
type Board struct {
	cells  [Size][Size]int
	marked [Size][Size]bool
	won    bool
}

// ParseBoard parses Size lines of Size numbers each.
func ParseBoard(lines []string) (*Board, error) {
	rows, err := aoc.Exactly(Size, lines)
	if err != nil {
		return nil, fmt.Errorf("board rows: %w", err)
	}
	b := &Board{}
	for i, line := range rows {
		values, err := input.Ints[int](line, "")
		if err != nil {
			return nil, err
		}
		if values, err = aoc.Exactly(Size, values); err != nil {
			return nil, fmt.Errorf("board row %d: %w", i+1, err)
		}
		copy(b.cells[i][:], values)
	}
	return b, nil
}

// Mark marks every cell holding n. If this completes a row or a column of
// a board which has not won before, the board's score is returned.
func (b *Board) Mark(n int) maybe.Maybe[int] {
	if b.won {
		return maybe.Nothing[int]()
	}
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == n {
				b.marked[i][j] = true
				if b.rowDone(i) || b.colDone(j) {
					b.won = true
				}
			}
		}
	}
	if !b.won {
		return maybe.Nothing[int]()
	}
	return maybe.Just(b.UnmarkedSum() * n)
}

func (b *Board) rowDone(i int) bool {
	for j := 0; j < Size; j++ {
		if !b.marked[i][j] {
			return false
		}
	}
	return true
}

func (b *Board) colDone(j int) bool {
	for i := 0; i < Size; i++ {
		if !b.marked[i][j] {
			return false
		}
	}
	return true
}

// UnmarkedSum adds up all unmarked numbers of the board.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for i := range b.cells {
		for j := range b.cells[i] {
			if !b.marked[i][j] {
				sum += b.cells[i][j]
			}
		}
	}
	return sum
}

// Solve computes the final score of the first and of the last winning board.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	batches := input.Batches(lines)
	if len(batches) == 0 || len(batches[0]) != 1 {
		return nil, errors.New("expected a single line of draws at the top of the input")
	}
	draws, err := input.Ints[int](batches[0][0], ",")
	if err != nil {
		return nil, fmt.Errorf("draws: %w", err)
	}
	boards := make([]*Board, 0, len(batches)-1)
	for i, batch := range batches[1:] {
		b, err := ParseBoard(batch)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i+1, err)
		}
		boards = append(boards, b)
	}
	scores := play(draws, boards)
	if len(scores) == 0 {
		return nil, ErrNoWinner
	}
	return solver.Parts(scores[0], scores[len(scores)-1]), nil
}

// play returns the scores of the boards in the order they win.
func play(draws []int, boards []*Board) []int {
	var scores []int
	for _, n := range draws {
		for i, b := range boards {
			var score int
			switch m := b.Mark(n).Match(); m {
			case m.Just(&score):
				tracer().Debugf("board %d wins with draw %d, score %d", i+1, n, score)
				scores = append(scores, score)
			case m.Nothing():
			}
		}
	}
	return scores
}
