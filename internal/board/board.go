// Package board provides the hidden ground truth a solver shoots at.
package board

import (
	"fmt"
	"strings"

	"github.com/vancomm/battleship-solver/internal/grid"
)

type Cell uint8

const (
	Water Cell = iota
	Ship
)

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	if c == Ship {
		return "X"
	}
	return "."
}

// Board answers point queries about the hidden grid.
type Board interface {
	Size() int
	At(p grid.Point) Cell
}

// Grid is an in-memory [Board].
type Grid struct {
	cells *grid.Grid[Cell]
}

func NewGrid(size int) *Grid {
	return &Grid{cells: grid.New(size, Water)}
}

func (g *Grid) Size() int {
	return g.cells.Size
}

func (g *Grid) At(p grid.Point) Cell {
	return g.cells.At(p)
}

// Ships counts ship-occupied cells.
func (g *Grid) Ships() (n int) {
	for _, c := range g.cells.All() {
		if c == Ship {
			n++
		}
	}
	return
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.cells.Size {
		for c := range g.cells.Size {
			fmt.Fprint(&b, g.cells.At(grid.Point{Row: r, Col: c}).String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// fits reports whether cells are all on the board and none of them touches
// an already placed ship, diagonals included.
func (g *Grid) fits(cells []grid.Point) bool {
	for _, p := range cells {
		if !g.cells.In(p) {
			return false
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				v, ok := g.cells.TryGet(grid.Point{Row: p.Row + dr, Col: p.Col + dc})
				if ok && v == Ship {
					return false
				}
			}
		}
	}
	return true
}

func (g *Grid) put(cells []grid.Point) {
	for _, p := range cells {
		g.cells.Set(p, Ship)
	}
}
