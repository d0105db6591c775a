// Package day15 solves "Chiton", day 15 of Advent of Code 2021.
package day15

import (
	"container/heap"
	"errors"
	"io"

	"github.com/npillmayer/aoc2021/grid"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
)

// Puzzle describes day 15.
var Puzzle = solver.Puzzle{Day: 15, Title: "Chiton", Solve: Solve}

// tracer traces with key 'aoc.day15'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day15")
}

const tiles = 5

// LowestRisk finds the path from the top left to the bottom right position
// with the lowest total risk, using Dijkstra's algorithm. The risk of the
// starting position is not counted.
func LowestRisk(cave *grid.Grid[int]) int {
	target := grid.Pos{Row: cave.Rows() - 1, Col: cave.Cols() - 1}
	dist := map[grid.Pos]int{{}: 0}
	queue := &frontier{{}}
	for queue.Len() > 0 {
		cur := heap.Pop(queue).(entry)
		if cur.pos == target {
			return cur.risk
		}
		if cur.risk > dist[cur.pos] {
			continue
		}
		for _, q := range cave.Orthogonal(cur.pos) {
			risk := cur.risk + cave.At(q)
			if d, seen := dist[q]; !seen || risk < d {
				dist[q] = risk
				heap.Push(queue, entry{pos: q, risk: risk})
			}
		}
	}
	return dist[target]
}

// Tile expands the cave n times in both directions. Every tile to the right
// or below has risk levels increased by one, wrapping from 9 to 1.
func Tile(cave *grid.Grid[int], n int) *grid.Grid[int] {
	rows, cols := cave.Rows(), cave.Cols()
	big := grid.New[int](n*rows, n*cols)
	for _, p := range big.Positions() {
		shift := p.Row/rows + p.Col/cols
		v := cave.At(grid.Pos{Row: p.Row % rows, Col: p.Col % cols})
		big.Set(p, (v+shift-1)%9+1)
	}
	return big
}

// Solve finds the lowest total risk for the cave and for the tiled cave.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var rows [][]int
	for i, line := range lines {
		digits, err := input.Digits(line)
		if err != nil {
			return nil, input.AtLine(i+1, err)
		}
		rows = append(rows, digits)
	}
	cave, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if cave.Rows() == 0 || cave.Cols() == 0 {
		return nil, errors.New("empty cave")
	}
	tracer().Debugf("cave of size %d×%d", cave.Rows(), cave.Cols())
	return solver.Parts(LowestRisk(cave), LowestRisk(Tile(cave, tiles))), nil
}

// --- Priority queue --------------------------------------------------------

type entry struct {
	pos  grid.Pos
	risk int
}

type frontier []entry

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].risk < f[j].risk }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
