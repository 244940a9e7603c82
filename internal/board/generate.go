package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

// MaxAttempts bounds the random placements tried for a single ship before
// Generate concludes the fleet does not fit.
const MaxAttempts = 10000

// NewRand returns the generator Generate expects for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// Generate places kinds in order at random positions and orientations.
// A placement that would leave the board or touch an earlier ship is
// retried with a fresh random draw.
func Generate(size int, kinds []fleet.Kind, r *rand.Rand) (*Grid, error) {
	g := NewGrid(size)

	for _, k := range kinds {
		placed := false
		for range MaxAttempts {
			shape := fleet.Orient(k, r.IntN(2) == 1)
			if shape.Height > size || shape.Width > size {
				break
			}
			anchor := grid.Point{
				Row: r.IntN(size - shape.Height + 1),
				Col: r.IntN(size - shape.Width + 1),
			}
			cells := shape.Place(anchor)
			if g.fits(cells) {
				g.put(cells)
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("could not place ship %s on a %dx%d board", k, size, size)
		}
	}

	return g, nil
}
