package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/database"
	"github.com/vancomm/battleship-solver/internal/handlers"
	"github.com/vancomm/battleship-solver/internal/middleware"
	"github.com/vancomm/battleship-solver/internal/repository"
	"github.com/vancomm/battleship-solver/internal/solver"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	store    handlers.RunStore
	defaults *config.Solver
	ws       *config.WebSocket
}

func New(logger *slog.Logger) *App {
	return &App{
		logger: logger,
		router: http.NewServeMux(),
	}
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Recover(a.logger),
		middleware.Logging(a.logger),
		middleware.RequestID(),
		middleware.Cors(config.AllowedOrigins()),
	)
}

func (a *App) setup(store handlers.RunStore) error {
	defaults, err := config.NewSolver()
	if err != nil {
		return err
	}
	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}

	a.store = store
	a.defaults = defaults
	a.ws = ws

	if config.Development() {
		solver.Log.SetLevel(logrus.DebugLevel)
	} else {
		solver.Log.SetLevel(logrus.WarnLevel)
	}

	a.loadRoutes()
	return nil
}

// Start connects to the database, migrates it and serves until ctx is done.
func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()

	if err := a.setup(repository.New(db)); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    config.Addr(),
		Handler: a.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info(
		"server listening",
		slog.String("addr", server.Addr),
		slog.Int("gridSize", a.defaults.GridSize),
		slog.String("fleet", a.defaults.Fleet.String()),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
