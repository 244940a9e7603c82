package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/solver"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")
	tests := map[string]struct {
		err  error
		want error
	}{
		"no rows":   {pgx.ErrNoRows, ErrNotFound},
		"wrapped":   {fmt.Errorf("query: %w", pgx.ErrNoRows), ErrNotFound},
		"unique":    {&pgconn.PgError{Code: pgerrcode.UniqueViolation}, ErrDuplicate},
		"other pg":  {&pgconn.PgError{Code: pgerrcode.CheckViolation}, nil},
		"unrelated": {other, other},
		"nil":       {nil, nil},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := mapError(tc.err)
			if tc.want == nil && tc.err != nil {
				assert.Same(t, tc.err, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestLeaderboardFilter(t *testing.T) {
	size := 12
	fleetStr := "five,two"

	where, args := LeaderboardFilter{}.WhereClause()
	assert.Equal(t, "won", where)
	assert.Empty(t, args)

	where, args = LeaderboardFilter{Size: &size, Fleet: &fleetStr}.WhereClause()
	assert.Equal(t, "won AND size = @size AND fleet = @fleet", where)
	assert.Equal(t, pgx.NamedArgs{"size": 12, "fleet": "five,two"}, args)

	assert.Equal(t, DefaultLeaderboardLimit, LeaderboardFilter{}.limit())
	assert.Equal(t, 3, LeaderboardFilter{Limit: 3}.limit())
	assert.Equal(t, MaxLeaderboardLimit, LeaderboardFilter{Limit: 1000}.limit())
}

func TestSnapshotRoundTrip(t *testing.T) {
	b, err := board.Parse(`
		. . . . .
		. X X X .
		. . . . .
		. . . . .
		. . . . .
	`)
	require.NoError(t, err)

	g := solver.New(b, fleet.New(fleet.Three))
	_, err = g.Play()
	require.NoError(t, err)

	state, err := EncodeSnapshot(g.Snapshot())
	require.NoError(t, err)

	run := GameRun{State: state}
	snap, err := run.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, g.Round, snap.Round)
	assert.Equal(t, g.Observed.Cells, snap.Observed.Cells)
	assert.Empty(t, snap.Remaining)
}

func TestLeaderboardRowSeed(t *testing.T) {
	const seed uint64 = 1<<63 + 5

	row := leaderboardRow{GameRunId: 3, Seed: int64(seed), Size: 12, Fleet: "two", Rounds: 9}
	entry := row.entry()
	assert.Equal(t, seed, entry.Seed)
	assert.Equal(t, LeaderboardEntry{GameRunId: 3, Seed: seed, Size: 12, Fleet: "two", Rounds: 9}, entry)

	run := GameRun{Seed: int64(seed)}
	assert.Equal(t, seed, run.SeedValue())
}
