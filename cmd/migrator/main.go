package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/database"
)

func run(logger *slog.Logger) error {
	url, err := config.DbURL()
	if err != nil {
		return err
	}

	migrator, err := database.Migrate(url, database.Migrations)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.CloseMigrator(migrator); err != nil {
			logger.Warn("failed to close migrator", slog.Any("error", err))
		}
	}()

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	logger.Info("migration successful", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(tint.NewHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	if err := run(logger); err != nil {
		logger.Error("failed to migrate db", slog.Any("error", err))
		os.Exit(1)
	}
}
