package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/battleship-solver/internal/config"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/repository"
	"github.com/vancomm/battleship-solver/internal/solver"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type GameParamsDTO struct {
	Seed  uint64 `schema:"seed"`
	Size  int    `schema:"size"`
	Fleet string `schema:"fleet"`
}

type GameParams struct {
	Seed  uint64
	Size  int
	Fleet *fleet.Fleet
}

// ParseGameParams fills in whatever the query leaves out from defaults. A
// missing seed gets a random one.
func ParseGameParams(query url.Values, defaults *config.Solver) (GameParams, error) {
	var dto GameParamsDTO
	if err := decoder.Decode(&dto, query); err != nil {
		return GameParams{}, err
	}

	params := GameParams{
		Seed:  dto.Seed,
		Size:  defaults.GridSize,
		Fleet: defaults.Fleet.Clone(),
	}
	if !query.Has("seed") {
		params.Seed = rand.Uint64()
	}
	if query.Has("size") {
		if err := config.ValidateGridSize(dto.Size); err != nil {
			return GameParams{}, err
		}
		params.Size = dto.Size
	}
	if query.Has("fleet") {
		f, err := fleet.ParseFleet(dto.Fleet)
		if err != nil {
			return GameParams{}, fmt.Errorf("invalid fleet: %w", err)
		}
		params.Fleet = f
	}
	return params, nil
}

type LeaderboardDTO struct {
	Size  int    `schema:"size"`
	Fleet string `schema:"fleet"`
	Limit int    `schema:"limit"`
}

func ParseLeaderboardFilter(query url.Values) (repository.LeaderboardFilter, error) {
	var dto LeaderboardDTO
	if err := decoder.Decode(&dto, query); err != nil {
		return repository.LeaderboardFilter{}, err
	}

	filter := repository.LeaderboardFilter{Limit: dto.Limit}
	if query.Has("size") {
		if err := config.ValidateGridSize(dto.Size); err != nil {
			return filter, err
		}
		filter.Size = &dto.Size
	}
	if query.Has("fleet") {
		f, err := fleet.ParseFleet(dto.Fleet)
		if err != nil {
			return filter, fmt.Errorf("invalid fleet: %w", err)
		}
		name := f.String()
		filter.Fleet = &name
	}
	if dto.Limit < 0 {
		return filter, fmt.Errorf("limit must not be negative")
	}
	return filter, nil
}

type GameRunDTO struct {
	GameRunId string            `json:"game_run_id"`
	Seed      uint64            `json:"seed"`
	Size      int               `json:"size"`
	Fleet     string            `json:"fleet"`
	Outcome   string            `json:"outcome"`
	Won       bool              `json:"won"`
	Rounds    int               `json:"rounds"`
	Board     [][]solver.Status `json:"board"`
	Remaining []fleet.Kind      `json:"remaining"`
	CreatedAt int64             `json:"created_at"`
}

func NewGameRunDTO(run *repository.GameRun) (*GameRunDTO, error) {
	snap, err := run.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("unable to decode game state: %w", err)
	}
	dto := &GameRunDTO{
		GameRunId: strconv.FormatInt(run.GameRunId, 10),
		Seed:      run.SeedValue(),
		Size:      int(run.Size),
		Fleet:     run.Fleet,
		Outcome:   run.Outcome,
		Won:       run.Won,
		Rounds:    int(run.Rounds),
		Board:     snap.Observed.Rows(),
		Remaining: snap.Remaining,
		CreatedAt: run.CreatedAt.Time.UnixMilli(),
	}
	if dto.Remaining == nil {
		dto.Remaining = []fleet.Kind{}
	}
	return dto, nil
}

// WatchMessage is one frame of the watch stream: a round, or the final
// result.
type WatchMessage struct {
	Type   string        `json:"type"`
	Round  *solver.Round `json:"round,omitempty"`
	Result *WatchResult  `json:"result,omitempty"`
}

type WatchResult struct {
	Outcome string           `json:"outcome"`
	Won     bool             `json:"won"`
	Rounds  int              `json:"rounds"`
	Sunk    []solver.Sinking `json:"sunk"`
	Error   string           `json:"error,omitempty"`
}
