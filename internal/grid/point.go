package grid

import "fmt"

// Point addresses a cell by row and column. It doubles as a relative
// offset when describing ship shapes.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) Add(q Point) Point {
	return Point{p.Row + q.Row, p.Col + q.Col}
}

// Transpose swaps row and column.
func (p Point) Transpose() Point {
	return Point{p.Col, p.Row}
}

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
