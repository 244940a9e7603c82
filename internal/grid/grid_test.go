package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryGet(t *testing.T) {
	g := New(3, 0)
	g.Set(Point{2, 1}, 7)

	v, ok := g.TryGet(Point{2, 1})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}} {
		v, ok := g.TryGet(p)
		assert.False(t, ok, "point %v", p)
		assert.Zero(t, v)
	}
}

func TestNeighbors(t *testing.T) {
	g := New(4, false)

	tests := []struct {
		name  string
		p     Point
		count int
	}{
		{"corner", Point{0, 0}, 3},
		{"edge", Point{0, 2}, 5},
		{"inner", Point{1, 1}, 8},
		{"far corner", Point{3, 3}, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := 0
			for q := range g.Neighbors(test.p) {
				assert.True(t, g.In(q))
				assert.NotEqual(t, test.p, q)
				n++
			}
			assert.Equal(t, test.count, n)
		})
	}
}

func TestAllIsRowMajor(t *testing.T) {
	g := New(3, 0)
	var prev *Point
	n := 0
	for p := range g.All() {
		if prev != nil {
			assert.True(t, prev.Less(p))
		}
		prev = &p
		n++
	}
	assert.Equal(t, 9, n)
}

func TestCloneAndRows(t *testing.T) {
	g := New(2, 1)
	c := g.Clone()
	c.Set(Point{0, 0}, 5)
	assert.Equal(t, 1, g.At(Point{0, 0}))
	assert.Equal(t, [][]int{{5, 1}, {1, 1}}, c.Rows())
}
