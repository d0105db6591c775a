package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedRows is returned if rows of a grid differ in length.
var ErrRaggedRows = errors.New("grid rows are of non-uniform length")

// Pos is a grid position.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the position displaced by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{p.Row + dr, p.Col + dc}
}

// Grid is a rectangular array of cells of type T, stored row-major.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New creates a grid of rows × cols zero-valued cells.
func New[T any](rows, cols int) *Grid[T] {
	assertThat(rows >= 0 && cols >= 0, "negative grid size %d×%d", rows, cols)
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// FromRows creates a grid from a slice of rows. All rows must be of equal length.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	g := New[T](len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, r, len(row), g.cols)
		}
		copy(g.cells[r*g.cols:], row)
	}
	tracer().Debugf("created grid %d×%d", g.rows, g.cols)
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Contains is true if p lies within the grid.
func (g *Grid[T]) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. p must lie within the grid.
func (g *Grid[T]) At(p Pos) T {
	assertThat(g.Contains(p), "position %v outside of %d×%d grid", p, g.rows, g.cols)
	return g.cells[p.Row*g.cols+p.Col]
}

// Set overwrites the cell at p. p must lie within the grid.
func (g *Grid[T]) Set(p Pos, value T) {
	assertThat(g.Contains(p), "position %v outside of %d×%d grid", p, g.rows, g.cols)
	g.cells[p.Row*g.cols+p.Col] = value
}

// Clone returns a deep copy of the grid's cells.
func (g *Grid[T]) Clone() *Grid[T] {
	c := New[T](g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// Positions lists all positions of the grid in row-major order.
func (g *Grid[T]) Positions() []Pos {
	ps := make([]Pos, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			ps = append(ps, Pos{r, c})
		}
	}
	return ps
}

// All is true if pred holds for every cell.
func (g *Grid[T]) All(pred func(T) bool) bool {
	for _, v := range g.cells {
		if !pred(v) {
			return false
		}
	}
	return true
}

var orthogonal = [...]Pos{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

var kingStep = [...]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Orthogonal returns the up to four positions horizontally or vertically
// adjacent to p, clipped to the grid.
func (g *Grid[T]) Orthogonal(p Pos) []Pos {
	return g.neighbours(p, orthogonal[:])
}

// KingStep returns the up to eight positions a king's move away from p,
// clipped to the grid.
func (g *Grid[T]) KingStep(p Pos) []Pos {
	return g.neighbours(p, kingStep[:])
}

func (g *Grid[T]) neighbours(p Pos, steps []Pos) []Pos {
	ns := make([]Pos, 0, len(steps))
	for _, d := range steps {
		if n := p.Add(d.Row, d.Col); g.Contains(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Format renders the grid, one line per row, using cell to render single cells.
func (g *Grid[T]) Format(cell func(T) string) string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteString(cell(g.cells[r*g.cols+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid[T]) String() string {
	return g.Format(func(v T) string { return fmt.Sprint(v) })
}
