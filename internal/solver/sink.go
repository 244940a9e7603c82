package solver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

// Sinking is a ship confirmed sunk.
type Sinking struct {
	Kind  fleet.Kind   `json:"kind"`
	Cells []grid.Point `json:"cells"`
}

type candidate struct {
	kind  fleet.Kind
	cells []grid.Point
}

// key identifies a candidate by kind and covered cells, so that two
// orientations landing on the same cells count once.
func (c candidate) key() string {
	cells := slices.Clone(c.cells)
	slices.SortFunc(cells, func(a, b grid.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	var b strings.Builder
	fmt.Fprint(&b, c.kind.String())
	for _, p := range cells {
		fmt.Fprint(&b, p.String())
	}
	return b.String()
}

// candidates lists every placement of shapes that covers all open hits and
// no cell known to be empty.
func (g *Game) candidates(shapes []fleet.Shape) []candidate {
	var (
		n      = g.Size()
		seen   = make(map[string]struct{})
		result []candidate
	)
	for _, s := range shapes {
		for row := 0; row <= n-s.Height; row++ {
			for col := 0; col <= n-s.Width; col++ {
				cells := s.Place(grid.Point{Row: row, Col: col})
				if !g.coversCluster(cells) || !g.clear(cells) {
					continue
				}
				c := candidate{kind: s.Kind, cells: cells}
				k := c.key()
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				result = append(result, c)
			}
		}
	}
	return result
}

func (g *Game) coversCluster(cells []grid.Point) bool {
	for _, h := range g.cluster {
		if !slices.Contains(cells, h) {
			return false
		}
	}
	return true
}

func (g *Game) clear(cells []grid.Point) bool {
	for _, p := range cells {
		if s := g.Observed.At(p); s == Water || s == Sunk {
			return false
		}
	}
	return true
}

// DetectSink commits the open hits as a sunk ship once exactly one
// placement explains them and every cell of it has been hit. It returns
// nil when more shots are needed.
func (g *Game) DetectSink(shapes []fleet.Shape) (*Sinking, error) {
	if len(g.cluster) == 0 {
		return nil, nil
	}

	candidates := g.candidates(shapes)
	if len(candidates) == 0 {
		g.log.WithFields(logrus.Fields{
			"round":   g.Round,
			"cluster": g.cluster,
		}).Warn("open hits fit no remaining ship")
		return nil, ErrUnresolvableCluster
	}
	if len(candidates) > 1 || len(candidates[0].cells) != len(g.cluster) {
		return nil, nil
	}

	c := candidates[0]
	if err := g.sink(c); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"round":     g.Round,
		"kind":      c.kind.String(),
		"remaining": g.Fleet.Len(),
	}).Debug("ship sunk")

	return &Sinking{Kind: c.kind, Cells: c.cells}, nil
}

func (g *Game) sink(c candidate) error {
	for _, p := range c.cells {
		if g.Observed.At(p) != Hit {
			return AssertionError{fmt.Sprintf("sinking %s over %v which is not a hit", c.kind, p)}
		}
	}
	if !g.Fleet.Remove(c.kind) {
		return AssertionError{fmt.Sprintf("no %s left to sink", c.kind)}
	}

	for _, p := range c.cells {
		g.Observed.Set(p, Sunk)
		// ships never touch, so everything around a sunk ship is water
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				q := grid.Point{Row: p.Row + dr, Col: p.Col + dc}
				if s, ok := g.Observed.TryGet(q); ok && s == Unknown {
					g.Observed.Set(q, Water)
				}
			}
		}
	}

	g.cluster = g.cluster[:0]
	return nil
}
