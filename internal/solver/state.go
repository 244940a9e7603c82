package solver

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

var Log = logrus.New()

// Game is the solver's view of one engagement.
type Game struct {
	Observed *grid.Grid[Status]
	Heat     *grid.Grid[float64]
	Fleet    *fleet.Fleet
	Round    int

	board   board.Board
	cluster []grid.Point // open hits, in the order they were made

	dedupe   bool
	observer Observer
	log      *logrus.Logger
}

type Option func(*Game)

// WithObserver registers o to receive every completed round.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// WithSymmetricDedupe controls whether an orientation identical to the
// other one of the same kind is scored once or twice. On by default.
func WithSymmetricDedupe(dedupe bool) Option {
	return func(g *Game) { g.dedupe = dedupe }
}

func WithLogger(l *logrus.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New starts a game against b. The fleet is owned by the game from now on.
func New(b board.Board, f *fleet.Fleet, opts ...Option) *Game {
	size := b.Size()
	g := &Game{
		Observed: grid.New(size, Unknown),
		Heat:     grid.New(size, 0.0),
		Fleet:    f,
		Round:    1,
		board:    b,
		dedupe:   true,
		log:      Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Size() int {
	return g.Observed.Size
}

func (g *Game) Mode() Mode {
	if len(g.cluster) > 0 {
		return Finishing
	}
	return Searching
}

// Cluster returns the open hits.
func (g *Game) Cluster() []grid.Point {
	return slices.Clone(g.cluster)
}

// Shapes orients every distinct remaining kind both ways. How many ships
// of a kind remain does not matter here.
func (g *Game) Shapes() []fleet.Shape {
	return fleet.Shapes(g.Fleet.Distinct(), g.dedupe)
}

// Snapshot is a read-only copy of the game for display.
type Snapshot struct {
	Round     int                 `json:"round"`
	Mode      Mode                `json:"mode"`
	Observed  *grid.Grid[Status]  `json:"-"`
	Heat      *grid.Grid[float64] `json:"-"`
	Remaining []fleet.Kind        `json:"remaining"`
	Cluster   []grid.Point        `json:"cluster"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:     g.Round,
		Mode:      g.Mode(),
		Observed:  g.Observed.Clone(),
		Heat:      g.Heat.Clone(),
		Remaining: g.Fleet.Kinds(),
		Cluster:   g.Cluster(),
	}
}
