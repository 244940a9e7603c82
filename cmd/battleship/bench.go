package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vancomm/battleship-solver/internal/bench"
	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/solver"
)

type benchOptions struct {
	games   int
	workers int
	seed    uint64
	size    int
	fleet   string
	dedupe  bool
	json    bool
}

func newBenchCmd() *cobra.Command {
	defaults := solverDefaults()
	opts := &benchOptions{
		games:  100,
		seed:   1,
		size:   defaults.GridSize,
		fleet:  defaults.Fleet.String(),
		dedupe: defaults.Dedupe,
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play many seeded games and summarise the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.games, "games", "n", opts.games, "number of games")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "concurrent games (0 means one per CPU)")
	flags.Uint64Var(&opts.seed, "seed", opts.seed, "seed of the first game; game i uses seed+i")
	flags.IntVar(&opts.size, "size", opts.size, "board size")
	flags.StringVar(&opts.fleet, "fleet", opts.fleet, "comma separated ship kinds")
	flags.BoolVar(&opts.dedupe, "dedupe", opts.dedupe, "score identical orientations of a ship once")
	flags.BoolVar(&opts.json, "json", false, "print the summary as JSON")

	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	if err := config.ValidateGridSize(opts.size); err != nil {
		return err
	}
	f, err := fleet.ParseFleet(opts.fleet)
	if err != nil {
		return err
	}

	summary, _, err := bench.Run(cmd.Context(), bench.Params{
		Games:    opts.games,
		Workers:  opts.workers,
		BaseSeed: opts.seed,
		Size:     opts.size,
		Fleet:    f,
		Dedupe:   opts.dedupe,
		Logger:   solver.Log,
	})
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
	return err
}
