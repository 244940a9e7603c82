package repository

import (
	"bytes"
	"context"
	"encoding/gob"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/battleship-solver/internal/solver"
)

// Outcome values stored with a run.
const (
	OutcomeWon          = "won"
	OutcomeNoMoves      = "no_moves"
	OutcomeUnresolvable = "unresolvable"
	OutcomeStopped      = "stopped"
)

// GameRun is a stored run. Seed holds the bits of the uint64 board seed;
// use SeedValue to read it back.
type GameRun struct {
	GameRunId int64
	Seed      int64
	Size      int32
	Fleet     string
	Outcome   string
	Won       bool
	Rounds    int32
	State     []byte
	CreatedAt pgtype.Timestamptz
}

func (r GameRun) SeedValue() uint64 {
	return uint64(r.Seed)
}

// Snapshot decodes the final solver state stored with the run.
func (r GameRun) Snapshot() (*solver.Snapshot, error) {
	var s solver.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(r.State)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

type CreateGameRunParams struct {
	Seed     uint64
	Size     int
	Fleet    string
	Outcome  string
	Won      bool
	Rounds   int
	Snapshot solver.Snapshot
}

func EncodeSnapshot(s solver.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (q Queries) CreateGameRun(ctx context.Context, params CreateGameRunParams) (*GameRun, error) {
	state, err := EncodeSnapshot(params.Snapshot)
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"seed":    int64(params.Seed),
		"size":    params.Size,
		"fleet":   params.Fleet,
		"outcome": params.Outcome,
		"won":     params.Won,
		"rounds":  params.Rounds,
		"state":   state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_run (seed, size, fleet, outcome, won, rounds, state)
		VALUES (@seed, @size, @fleet, @outcome, @won, @rounds, @state)
		RETURNING *;`,
		args,
	)
	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameRun])
	return run, mapError(err)
}

func (q Queries) FetchGameRun(ctx context.Context, gameRunId int64) (*GameRun, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_run WHERE game_run_id = $1",
		gameRunId,
	)
	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameRun])
	return run, mapError(err)
}

// FetchGameRunBySeed finds the run stored for the same generated board.
func (q Queries) FetchGameRunBySeed(ctx context.Context, seed uint64, size int, fleet string) (*GameRun, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_run WHERE seed = @seed AND size = @size AND fleet = @fleet",
		pgx.NamedArgs{
			"seed":  int64(seed),
			"size":  size,
			"fleet": fleet,
		},
	)
	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameRun])
	return run, mapError(err)
}
