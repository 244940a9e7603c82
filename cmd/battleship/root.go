package main

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/solver"
)

// errGameLost makes the process fail without printing anything more than
// the game already did.
var errGameLost = errors.New("game not won")

type rootOptions struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "battleship",
		Short:         "Play Battleship with a heat-map solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(solver.Log, opts, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", config.Development(), "log every shot")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write solver logs to a rotated file instead of stderr")

	cmd.AddCommand(newPlayCmd(), newBenchCmd())
	return cmd
}

func setupLogging(log *logrus.Logger, opts *rootOptions, stderr io.Writer) error {
	level := logrus.WarnLevel
	if opts.verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})
	log.ReplaceHooks(make(logrus.LevelHooks))

	if opts.logFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

// solverDefaults reads the environment, falling back to the reference game
// if it is malformed.
func solverDefaults() *config.Solver {
	cfg, err := config.NewSolver()
	if err != nil {
		solver.Log.WithError(err).Warn("ignoring solver environment")
		return &config.Solver{
			GridSize: config.DefaultGridSize,
			Fleet:    fleet.Default(),
			Dedupe:   true,
		}
	}
	return cfg
}
