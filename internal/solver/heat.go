package solver

import (
	"math"

	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

const (
	baseHeat  = 0.001
	hitFactor = 10.0
)

// placementHeat is what a possible placement adds to each of its cells.
// Every hit it already covers multiplies the weight, so ships being sunk
// are finished before new ones are searched for.
func placementHeat(hits int) float64 {
	return baseHeat * math.Pow(hitFactor, float64(hits))
}

// ComputeHeat recomputes the heat grid from scratch by trying every shape
// at every anchor where its bounding box fits.
func (g *Game) ComputeHeat(shapes []fleet.Shape) {
	g.Heat.Fill(0)
	n := g.Size()

	for _, s := range shapes {
		for row := 0; row <= n-s.Height; row++ {
			for col := 0; col <= n-s.Width; col++ {
				anchor := grid.Point{Row: row, Col: col}
				hits, ok := g.placement(s, anchor)
				if !ok {
					continue
				}
				heat := placementHeat(hits)
				for _, o := range s.Offsets {
					p := anchor.Add(o)
					g.Heat.Set(p, g.Heat.At(p)+heat)
				}
			}
		}
	}
}

// placement reports whether s can lie at anchor given what is known, and
// how many open hits it would cover.
func (g *Game) placement(s fleet.Shape, anchor grid.Point) (hits int, ok bool) {
	for _, o := range s.Offsets {
		switch g.Observed.At(anchor.Add(o)) {
		case Water, Sunk:
			return 0, false
		case Hit:
			hits++
		}
	}
	return hits, true
}
