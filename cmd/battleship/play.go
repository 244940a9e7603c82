package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/render"
	"github.com/vancomm/battleship-solver/internal/solver"
)

type playOptions struct {
	seed    uint64
	size    int
	fleet   string
	fixture string
	heat    bool
	color   bool
	quiet   bool
	dedupe  bool
}

func newPlayCmd() *cobra.Command {
	defaults := solverDefaults()
	opts := &playOptions{
		size:   defaults.GridSize,
		fleet:  defaults.Fleet.String(),
		dedupe: defaults.Dedupe,
	}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game and print every round",
		Long: `Play one game on a random board, or on a fixture, printing the
solver's view of the board and the chosen shot every round.

Exits with status 1 unless the whole fleet is sunk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = rand.Uint64()
			}
			return runPlay(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.seed, "seed", 0, "board seed (random if unset)")
	flags.IntVar(&opts.size, "size", opts.size, "board size")
	flags.StringVar(&opts.fleet, "fleet", opts.fleet, "comma separated ship kinds")
	flags.StringVar(&opts.fixture, "fixture", "", "play a YAML board fixture instead of a random board")
	flags.BoolVar(&opts.heat, "heat", false, "print the heat grid every round")
	flags.BoolVar(&opts.color, "color", false, "colour the grids")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print shots and the outcome")
	flags.BoolVar(&opts.dedupe, "dedupe", opts.dedupe, "score identical orientations of a ship once")
	cmd.MarkFlagsMutuallyExclusive("fixture", "seed")

	return cmd
}

func loadBoard(cmd *cobra.Command, opts *playOptions) (board.Board, *fleet.Fleet, error) {
	if opts.fixture != "" {
		fx, err := board.LoadFixture(opts.fixture)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load fixture: %w", err)
		}
		return fx.Board, fleet.New(fx.Fleet...), nil
	}

	if err := config.ValidateGridSize(opts.size); err != nil {
		return nil, nil, err
	}
	f, err := fleet.ParseFleet(opts.fleet)
	if err != nil {
		return nil, nil, err
	}
	b, err := board.Generate(opts.size, f.Kinds(), board.NewRand(opts.seed))
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seed %d, %dx%d, fleet %s\n\n", opts.seed, opts.size, opts.size, f)
	return b, f, nil
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	b, f, err := loadBoard(cmd, opts)
	if err != nil {
		return err
	}

	out := render.New(cmd.OutOrStdout(), opts.color)
	var renderErr error
	observer := solver.ObserverFunc(func(g *solver.Game, r solver.Round) {
		if renderErr != nil {
			return
		}
		renderErr = printRound(out, g, r, opts)
	})

	g := solver.New(b, f, solver.WithObserver(observer), solver.WithSymmetricDedupe(opts.dedupe))
	result, playErr := g.Play()
	if renderErr != nil {
		return renderErr
	}
	if err := out.Outcome(result, playErr); err != nil {
		return err
	}
	if !result.Won {
		return errGameLost
	}
	return nil
}

func printRound(out *render.Renderer, g *solver.Game, r solver.Round, opts *playOptions) error {
	if !opts.quiet {
		if err := out.RoundHeader(r.Number); err != nil {
			return err
		}
		if opts.heat {
			if err := out.Heat(g.Heat); err != nil {
				return err
			}
		}
	}
	if err := out.Shot(r); err != nil {
		return err
	}
	if opts.quiet {
		return nil
	}
	return out.Observed(g.Observed)
}
