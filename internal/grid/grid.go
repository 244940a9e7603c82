package grid

import "iter"

// Grid is a square Size×Size field stored row-major in a flat slice.
// Fields are exported so that snapshots survive gob encoding.
type Grid[T any] struct {
	Size  int
	Cells []T
}

func New[T any](size int, fill T) *Grid[T] {
	cells := make([]T, size*size)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Size: size, Cells: cells}
}

func (g *Grid[T]) In(p Point) bool {
	return 0 <= p.Row && p.Row < g.Size && 0 <= p.Col && p.Col < g.Size
}

func (g *Grid[T]) index(p Point) int {
	return p.Row*g.Size + p.Col
}

// At panics on points outside the grid; use [Grid.TryGet] when the point
// may be out of bounds.
func (g *Grid[T]) At(p Point) T {
	return g.Cells[g.index(p)]
}

func (g *Grid[T]) Set(p Point, v T) {
	g.Cells[g.index(p)] = v
}

// TryGet returns the value at p and whether p lies inside the grid.
func (g *Grid[T]) TryGet(p Point) (v T, ok bool) {
	if !g.In(p) {
		return v, false
	}
	return g.Cells[g.index(p)], true
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// All yields every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.Cells {
			if !yield(Point{i / g.Size, i % g.Size}, v) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds cells of the 3x3 block around p,
// excluding p itself.
func (g *Grid[T]) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := Point{p.Row + dr, p.Col + dc}
				if !g.In(q) {
					continue
				}
				if !yield(q) {
					return
				}
			}
		}
	}
}

func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid[T]{Size: g.Size, Cells: cells}
}

// Rows returns a copy of the grid as nested slices, one per row.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.Size)
	for r := range g.Size {
		rows[r] = make([]T, g.Size)
		copy(rows[r], g.Cells[r*g.Size:(r+1)*g.Size])
	}
	return rows
}
