// Package day21 solves "Dirac Dice", day 21 of Advent of Code 2021.
package day21

import (
	"fmt"
	"io"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 21.
var Puzzle = solver.Puzzle{Day: 21, Title: "Dirac Dice", Solve: Solve}

// tracer traces with key 'aoc.day21'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day21")
}

const (
	trackSize     = 10
	practiceGoal  = 1000
	diracGoal     = 21
	deterministic = 100 // sides of the practice die
)

// ParseStart reads the starting positions of both players.
func ParseStart(lines []string) ([2]int, error) {
	var start [2]int
	if len(lines) < 2 {
		return start, fmt.Errorf("expected 2 starting positions, got %d lines", len(lines))
	}
	for i := range start {
		var player int
		_, err := fmt.Sscanf(lines[i], "Player %d starting position: %d", &player, &start[i])
		if err != nil {
			return start, input.AtLine(i+1, fmt.Errorf("invalid starting position %q", lines[i]))
		}
		if player != i+1 || start[i] < 1 || start[i] > trackSize {
			return start, input.AtLine(i+1, fmt.Errorf("invalid starting position %q", lines[i]))
		}
	}
	return start, nil
}

func move(pos, steps int) int {
	return (pos+steps-1)%trackSize + 1
}

// Practice plays with the deterministic die until a player reaches 1000.
// It returns the losing score multiplied by the number of rolls.
func Practice(start [2]int) int {
	pos := start
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%deterministic + 1
		rolls++
		return die
	}
	for player := 0; ; player = 1 - player {
		pos[player] = move(pos[player], roll()+roll()+roll())
		score[player] += pos[player]
		if score[player] >= practiceGoal {
			tracer().Debugf("player %d wins %v after %d rolls", player+1, score, rolls)
			return score[1-player] * rolls
		}
	}
}

// rollFrequencies[s] is the number of universes in which three rolls of
// the Dirac die add up to s.
var rollFrequencies = [...]int64{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

type state struct {
	pos, other, score, otherScore int
}

// Dirac counts the universes in which each player wins with the Dirac die.
func Dirac(start [2]int) [2]int64 {
	memo := make(map[state][2]int64)
	var wins func(s state) [2]int64
	wins = func(s state) [2]int64 {
		if w, ok := memo[s]; ok {
			return w
		}
		var w [2]int64
		for sum := 3; sum <= 9; sum++ {
			pos := move(s.pos, sum)
			score := s.score + pos
			if score >= diracGoal {
				w[0] += rollFrequencies[sum]
				continue
			}
			sub := wins(state{pos: s.other, other: pos, score: s.otherScore, otherScore: score})
			w[0] += rollFrequencies[sum] * sub[1]
			w[1] += rollFrequencies[sum] * sub[0]
		}
		memo[s] = w
		return w
	}
	w := wins(state{pos: start[0], other: start[1]})
	tracer().Debugf("%d states memoised", len(memo))
	return w
}

// Solve plays a practice game and then counts Dirac universes, answering
// with the number of universes of the player who wins more often.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	start, err := ParseStart(lines)
	if err != nil {
		return nil, err
	}
	w := Dirac(start)
	return solver.Parts(Practice(start), max(w[0], w[1])), nil
}
