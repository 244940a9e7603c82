package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/battleship-solver/internal/fleet"
)

const (
	DefaultGridSize = 12
	MinGridSize     = 5
	MaxGridSize     = 30
)

type Solver struct {
	GridSize int
	Fleet    *fleet.Fleet
	Dedupe   bool
}

// NewSolver reads solver defaults from BATTLESHIP_GRID_SIZE,
// BATTLESHIP_FLEET and BATTLESHIP_DEDUPE_SYMMETRIC. Unset variables fall
// back to the reference game.
func NewSolver() (*Solver, error) {
	cfg := &Solver{
		GridSize: DefaultGridSize,
		Fleet:    fleet.Default(),
		Dedupe:   true,
	}

	if sizeStr, ok := os.LookupEnv("BATTLESHIP_GRID_SIZE"); ok {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, fmt.Errorf("unable to convert grid size to int: %w", err)
		}
		if err := ValidateGridSize(size); err != nil {
			return nil, err
		}
		cfg.GridSize = size
	}

	if fleetStr, ok := os.LookupEnv("BATTLESHIP_FLEET"); ok {
		f, err := fleet.ParseFleet(fleetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BATTLESHIP_FLEET: %w", err)
		}
		cfg.Fleet = f
	}

	if dedupeStr, ok := os.LookupEnv("BATTLESHIP_DEDUPE_SYMMETRIC"); ok {
		dedupe, err := strconv.ParseBool(dedupeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BATTLESHIP_DEDUPE_SYMMETRIC: %w", err)
		}
		cfg.Dedupe = dedupe
	}

	return cfg, nil
}

func ValidateGridSize(size int) error {
	if size < MinGridSize || size > MaxGridSize {
		return fmt.Errorf("grid size must be between %d and %d, got %d", MinGridSize, MaxGridSize, size)
	}
	return nil
}
