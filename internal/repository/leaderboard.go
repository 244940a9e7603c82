// custom query
package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type LeaderboardEntry struct {
	GameRunId int64  `json:"game_run_id"`
	Seed      uint64 `json:"seed"`
	Size      int32  `json:"size"`
	Fleet     string `json:"fleet"`
	Rounds    int32  `json:"rounds"`
}

type LeaderboardFilter struct {
	Size  *int
	Fleet *string
	Limit int
}

func (f LeaderboardFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultLeaderboardLimit
	case f.Limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	}
	return f.Limit
}

func (f LeaderboardFilter) WhereClause() (string, pgx.NamedArgs) {
	parts := []string{"won"}
	args := pgx.NamedArgs{}

	if f.Size != nil {
		parts = append(parts, "size = @size")
		args["size"] = *f.Size
	}
	if f.Fleet != nil {
		parts = append(parts, "fleet = @fleet")
		args["fleet"] = *f.Fleet
	}

	return strings.Join(parts, " AND "), args
}

// GetLeaderboard lists won runs, fewest rounds first. Ties go to the
// earlier run.
func (q Queries) GetLeaderboard(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardEntry, error) {
	where, args := filter.WhereClause()
	args["limit"] = filter.limit()

	rows, _ := q.db.Query(
		ctx,
		`SELECT game_run_id, seed, size, fleet, rounds
		FROM game_run
		WHERE `+where+`
		ORDER BY rounds ASC, created_at ASC
		LIMIT @limit`,
		args,
	)
	stored, err := pgx.CollectRows(rows, pgx.RowToStructByName[leaderboardRow])
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, len(stored))
	for i, row := range stored {
		entries[i] = row.entry()
	}
	return entries, nil
}

// leaderboardRow is a leaderboard entry as stored. Seeds live in a signed
// BIGINT column.
type leaderboardRow struct {
	GameRunId int64
	Seed      int64
	Size      int32
	Fleet     string
	Rounds    int32
}

func (r leaderboardRow) entry() LeaderboardEntry {
	return LeaderboardEntry{
		GameRunId: r.GameRunId,
		Seed:      uint64(r.Seed),
		Size:      r.Size,
		Fleet:     r.Fleet,
		Rounds:    r.Rounds,
	}
}
