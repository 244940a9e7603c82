package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/battleship-solver/internal/grid"
)

// Round reports what happened in one round.
type Round struct {
	Number    int        `json:"round"`
	Shot      grid.Point `json:"shot"`
	Score     float64    `json:"score"`
	Result    Status     `json:"result"`
	Sunk      *Sinking   `json:"sunk,omitempty"`
	Mode      Mode       `json:"mode"`
	Remaining int        `json:"remaining"`
}

type Observer interface {
	OnRound(g *Game, r Round)
}

type ObserverFunc func(g *Game, r Round)

// [ObserverFunc] implements [Observer]
func (f ObserverFunc) OnRound(g *Game, r Round) {
	f(g, r)
}

// Result of a finished game. Rounds counts the rounds played, which is
// also the number of shots fired.
type Result struct {
	Won    bool      `json:"won"`
	Rounds int       `json:"rounds"`
	Sunk   []Sinking `json:"sunk"`
}

func (g *Game) Over() bool {
	return g.Fleet.Empty()
}

// Step plays one round: score the grid, fire at the hottest cell and, if a
// ship is being finished, check whether it is sunk.
func (g *Game) Step() (Round, error) {
	if g.Over() {
		return Round{}, ErrGameOver
	}

	shapes := g.Shapes()
	g.ComputeHeat(shapes)

	p, score, err := g.SelectTarget()
	if err != nil {
		return Round{Number: g.Round}, err
	}

	g.log.WithFields(logrus.Fields{
		"round": g.Round,
		"row":   p.Row,
		"col":   p.Col,
		"score": score,
	}).Debug("target selected")

	status, err := g.Fire(p)
	if err != nil {
		return Round{Number: g.Round}, err
	}

	r := Round{
		Number: g.Round,
		Shot:   p,
		Score:  score,
		Result: status,
	}

	var sinkErr error
	if g.Mode() == Finishing {
		r.Sunk, sinkErr = g.DetectSink(shapes)
	}

	r.Mode = g.Mode()
	r.Remaining = g.Fleet.Len()

	if g.observer != nil {
		g.observer.OnRound(g, r)
	}
	g.Round++

	return r, sinkErr
}

// Played is the number of rounds in which a shot was fired.
func (g *Game) Played() int {
	return g.Round - 1
}

// Play runs rounds until the fleet is sunk or the solver gets stuck. The
// returned result is valid in both cases.
func (g *Game) Play() (Result, error) {
	var result Result
	for !g.Over() {
		r, err := g.Step()
		if r.Sunk != nil {
			result.Sunk = append(result.Sunk, *r.Sunk)
		}
		if err != nil {
			result.Rounds = g.Played()
			g.log.WithFields(logrus.Fields{
				"round": g.Round,
				"error": err,
			}).Info("game stopped")
			return result, err
		}
	}
	result.Won = true
	result.Rounds = g.Played()
	return result, nil
}
