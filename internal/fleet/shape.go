package fleet

import (
	"slices"

	"github.com/vancomm/battleship-solver/internal/grid"
)

// Shape is a ship kind in one of its two orientations.
type Shape struct {
	Kind          Kind
	Horizontal    bool
	Height, Width int
	Offsets       []grid.Point
}

// Orient derives the oriented shape of k. Horizontal is the catalog
// layout; the other orientation transposes every offset and the bounds.
func Orient(k Kind, horizontal bool) Shape {
	h, w := k.Bounds()
	offsets := k.Offsets()
	if !horizontal {
		h, w = w, h
		for i, p := range offsets {
			offsets[i] = p.Transpose()
		}
	}
	return Shape{
		Kind:       k,
		Horizontal: horizontal,
		Height:     h,
		Width:      w,
		Offsets:    offsets,
	}
}

// Shapes orients every kind, first all kinds vertically and then all
// horizontally. With dedupe set, an orientation covering exactly the same
// offsets as one already listed for that kind is dropped.
func Shapes(kinds []Kind, dedupe bool) []Shape {
	shapes := make([]Shape, 0, 2*len(kinds))
	for _, horizontal := range []bool{false, true} {
		for _, k := range kinds {
			s := Orient(k, horizontal)
			if dedupe && slices.ContainsFunc(shapes, s.Same) {
				continue
			}
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// Same reports whether both shapes are the same kind covering the same
// offsets, regardless of orientation flag or offset order.
func (s Shape) Same(o Shape) bool {
	if s.Kind != o.Kind || s.Height != o.Height || s.Width != o.Width {
		return false
	}
	return slices.Equal(sortedOffsets(s.Offsets), sortedOffsets(o.Offsets))
}

// Place returns the absolute cells covered with the shape anchored at a.
func (s Shape) Place(a grid.Point) []grid.Point {
	cells := make([]grid.Point, len(s.Offsets))
	for i, p := range s.Offsets {
		cells[i] = a.Add(p)
	}
	return cells
}

func sortedOffsets(offsets []grid.Point) []grid.Point {
	sorted := slices.Clone(offsets)
	slices.SortFunc(sorted, func(a, b grid.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return sorted
}
