// Package bench plays many seeded random games and summarises how the
// solver fared.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/solver"
)

type Params struct {
	Games    int
	Workers  int
	BaseSeed uint64
	Size     int
	Fleet    *fleet.Fleet
	Dedupe   bool
	Logger   *logrus.Logger
}

// Outcome of a single seeded game.
type Outcome struct {
	Seed   uint64 `json:"seed"`
	Won    bool   `json:"won"`
	Rounds int    `json:"rounds"`
	Err    error  `json:"-"`
}

type Summary struct {
	Games        int     `json:"games"`
	Won          int     `json:"won"`
	Stuck        int     `json:"stuck"`
	Unresolvable int     `json:"unresolvable"`
	MinRounds    int     `json:"min_rounds"`
	MaxRounds    int     `json:"max_rounds"`
	MeanRounds   float64 `json:"mean_rounds"`
}

// PlaySeed generates the board for seed and plays it to the end.
func PlaySeed(seed uint64, size int, f *fleet.Fleet, opts ...solver.Option) (solver.Result, error) {
	b, err := board.Generate(size, f.Kinds(), board.NewRand(seed))
	if err != nil {
		return solver.Result{}, err
	}
	return solver.New(b, f.Clone(), opts...).Play()
}

// Run plays p.Games games with seeds BaseSeed, BaseSeed+1, ... on at most
// p.Workers goroutines. Solver failures are counted, not returned; an
// error is returned only when a board cannot be generated or ctx ends.
func Run(ctx context.Context, p Params) (Summary, []Outcome, error) {
	if p.Games <= 0 {
		return Summary{}, nil, fmt.Errorf("games must be positive, got %d", p.Games)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := p.Logger
	if logger == nil {
		logger = solver.Log
	}

	outcomes := make([]Outcome, p.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range p.Games {
		seed := p.BaseSeed + uint64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := PlaySeed(seed, p.Size, p.Fleet,
				solver.WithSymmetricDedupe(p.Dedupe),
				solver.WithLogger(logger),
			)
			if err != nil && !errors.Is(err, solver.ErrNoMoves) &&
				!errors.Is(err, solver.ErrUnresolvableCluster) {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			outcomes[i] = Outcome{Seed: seed, Won: result.Won, Rounds: result.Rounds, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, nil, err
	}
	return Summarize(outcomes), outcomes, nil
}

func Summarize(outcomes []Outcome) Summary {
	s := Summary{Games: len(outcomes), MinRounds: math.MaxInt}
	total := 0
	for _, o := range outcomes {
		switch {
		case o.Won:
			s.Won++
			total += o.Rounds
			s.MinRounds = min(s.MinRounds, o.Rounds)
			s.MaxRounds = max(s.MaxRounds, o.Rounds)
		case errors.Is(o.Err, solver.ErrUnresolvableCluster):
			s.Unresolvable++
		default:
			s.Stuck++
		}
	}
	if s.Won == 0 {
		s.MinRounds = 0
	} else {
		s.MeanRounds = float64(total) / float64(s.Won)
	}
	return s
}

// Summary implements [fmt.Stringer]
func (s Summary) String() string {
	return fmt.Sprintf(
		"games: %d, won: %d, stuck: %d, unresolvable: %d, rounds min/max/mean: %d/%d/%.2f",
		s.Games, s.Won, s.Stuck, s.Unresolvable, s.MinRounds, s.MaxRounds, s.MeanRounds,
	)
}
