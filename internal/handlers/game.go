package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/repository"
	"github.com/vancomm/battleship-solver/internal/solver"
)

// RunStore is the part of [repository.Queries] the handlers use.
type RunStore interface {
	CreateGameRun(ctx context.Context, params repository.CreateGameRunParams) (*repository.GameRun, error)
	FetchGameRun(ctx context.Context, gameRunId int64) (*repository.GameRun, error)
	FetchGameRunBySeed(ctx context.Context, seed uint64, size int, fleet string) (*repository.GameRun, error)
	GetLeaderboard(ctx context.Context, filter repository.LeaderboardFilter) ([]repository.LeaderboardEntry, error)
}

type GameHandler struct {
	logger   *slog.Logger
	repo     RunStore
	defaults *config.Solver
	ws       *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	repo RunStore,
	defaults *config.Solver,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		repo:     repo,
		defaults: defaults,
		ws:       ws,
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return repository.OutcomeWon
	case errors.Is(err, solver.ErrNoMoves):
		return repository.OutcomeNoMoves
	case errors.Is(err, solver.ErrUnresolvableCluster):
		return repository.OutcomeUnresolvable
	}
	return repository.OutcomeStopped
}

func (h GameHandler) newGame(p GameParams, opts ...solver.Option) (*solver.Game, error) {
	b, err := board.Generate(p.Size, p.Fleet.Kinds(), board.NewRand(p.Seed))
	if err != nil {
		return nil, err
	}
	opts = append([]solver.Option{solver.WithSymmetricDedupe(h.defaults.Dedupe)}, opts...)
	return solver.New(b, p.Fleet.Clone(), opts...), nil
}

func (h GameHandler) play(p GameParams) (repository.CreateGameRunParams, error) {
	g, err := h.newGame(p)
	if err != nil {
		return repository.CreateGameRunParams{}, err
	}
	result, err := g.Play()
	return repository.CreateGameRunParams{
		Seed:     p.Seed,
		Size:     p.Size,
		Fleet:    p.Fleet.String(),
		Outcome:  outcome(err),
		Won:      result.Won,
		Rounds:   result.Rounds,
		Snapshot: g.Snapshot(),
	}, nil
}

func (h GameHandler) sendRun(w http.ResponseWriter, status int, run *repository.GameRun) {
	dto, err := NewGameRunDTO(run)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to build game run response", slog.Int64("gameRunId", run.GameRunId), slog.Any("error", err))
		return
	}
	sendJSONOrLog(w, h.logger, status, dto)
}

// NewGame plays the board generated from the requested seed and stores the
// run. Asking for a board that was already played returns the stored run.
func (h GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query(), h.defaults)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}
	fleetName := params.Fleet.String()

	existing, err := h.repo.FetchGameRunBySeed(r.Context(), params.Seed, params.Size, fleetName)
	if err == nil {
		h.sendRun(w, http.StatusOK, existing)
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to look up game run", slog.Any("error", err))
		return
	}

	run, err := h.play(params)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}
	h.logger.Debug(
		"game played",
		slog.Uint64("seed", params.Seed),
		slog.Int("size", params.Size),
		slog.String("fleet", fleetName),
		slog.String("outcome", run.Outcome),
		slog.Int("rounds", run.Rounds),
	)

	created, err := h.repo.CreateGameRun(r.Context(), run)
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with an identical request
		created, err = h.repo.FetchGameRunBySeed(r.Context(), params.Seed, params.Size, fleetName)
		if err == nil {
			h.sendRun(w, http.StatusOK, created)
			return
		}
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to store game run", slog.Any("error", err))
		return
	}

	h.sendRun(w, http.StatusCreated, created)
}

func (h GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid game run id"))
		return
	}

	run, err := h.repo.FetchGameRun(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		sendErrorOrLog(w, h.logger, http.StatusNotFound, fmt.Errorf("game run %d not found", id))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch game run", slog.Int64("gameRunId", id), slog.Any("error", err))
		return
	}

	h.sendRun(w, http.StatusOK, run)
}

func (h GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseLeaderboardFilter(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	entries, err := h.repo.GetLeaderboard(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch leaderboard", slog.Any("error", err))
		return
	}
	if entries == nil {
		entries = []repository.LeaderboardEntry{}
	}

	sendJSONOrLog(w, h.logger, http.StatusOK, entries)
}
