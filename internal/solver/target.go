package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/grid"
)

// SelectTarget picks the hottest unknown cell. Ties go to the first cell in
// row-major order.
func (g *Game) SelectTarget() (grid.Point, float64, error) {
	var (
		best  float64
		at    grid.Point
		found bool
	)
	for p, status := range g.Observed.All() {
		if status != Unknown {
			continue
		}
		if heat := g.Heat.At(p); heat > best {
			best, at, found = heat, p, true
		}
	}
	if !found {
		return grid.Point{}, 0, ErrNoMoves
	}
	return at, best, nil
}

// Fire shoots at p and records the outcome.
func (g *Game) Fire(p grid.Point) (Status, error) {
	status, ok := g.Observed.TryGet(p)
	if !ok {
		return Unknown, ErrOutOfBounds
	}
	if status != Unknown {
		return status, ErrAlreadyShot
	}

	if g.board.At(p) == board.Ship {
		status = Hit
		g.cluster = append(g.cluster, p)
	} else {
		status = Water
	}
	g.Observed.Set(p, status)

	g.log.WithFields(logrus.Fields{
		"round":  g.Round,
		"row":    p.Row,
		"col":    p.Col,
		"result": status.String(),
	}).Debug("fired")

	return status, nil
}
