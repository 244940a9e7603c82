package board

import (
	"fmt"
	"slices"

	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

// Validate checks that b holds exactly the ships in kinds and that no two
// ships touch, not even diagonally. Since ships never touch, every
// 8-connected group of ship cells is one ship; each group must match an
// orientation of a distinct ship of the fleet.
func Validate(b *Grid, kinds []fleet.Kind) error {
	remaining := slices.Clone(kinds)
	seen := grid.New(b.Size(), false)

	for p, v := range b.cells.All() {
		if v != Ship || seen.At(p) {
			continue
		}
		group := b.collect(p, seen)
		k, ok := matchShip(group, remaining)
		if !ok {
			return fmt.Errorf("ship cells at %v match no remaining ship of the fleet", p)
		}
		i := slices.Index(remaining, k)
		remaining = slices.Delete(remaining, i, i+1)
	}
	if len(remaining) > 0 {
		return fmt.Errorf("ships missing from board: %v", remaining)
	}
	return nil
}

func (b *Grid) collect(start grid.Point, seen *grid.Grid[bool]) []grid.Point {
	group := []grid.Point{}
	stack := []grid.Point{start}
	seen.Set(start, true)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, p)
		for q := range b.cells.Neighbors(p) {
			if b.cells.At(q) == Ship && !seen.At(q) {
				seen.Set(q, true)
				stack = append(stack, q)
			}
		}
	}
	return group
}

func matchShip(group []grid.Point, kinds []fleet.Kind) (fleet.Kind, bool) {
	top := group[0]
	left := group[0]
	for _, p := range group {
		top.Row = min(top.Row, p.Row)
		left.Col = min(left.Col, p.Col)
	}
	anchor := grid.Point{Row: top.Row, Col: left.Col}
	for _, k := range kinds {
		if k.Size() != len(group) {
			continue
		}
		for _, horizontal := range []bool{false, true} {
			cells := fleet.Orient(k, horizontal).Place(anchor)
			if sameCells(cells, group) {
				return k, true
			}
		}
	}
	return 0, false
}

func sameCells(a, b []grid.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		if !slices.Contains(b, p) {
			return false
		}
	}
	return true
}
