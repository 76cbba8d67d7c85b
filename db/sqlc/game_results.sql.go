package sqlc

import (
	"context"
	"database/sql"
	"time"

	"github.com/sqlc-dev/pqtype"
)

const countGameResults = `-- name: CountGameResults :one
SELECT COUNT(*) FROM game_results
`

func (q *Queries) CountGameResults(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countGameResults)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countWins = `-- name: CountWins :one
SELECT COUNT(*) FROM game_results WHERE won = TRUE
`

func (q *Queries) CountWins(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countWins)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getGameResult = `-- name: GetGameResult :one
SELECT id, game_uuid, layout_source, ship_count, shots, hits, misses, won, shot_history, started_at, finished_at FROM game_results WHERE game_uuid = $1
`

func (q *Queries) GetGameResult(ctx context.Context, gameUuid string) (GameResult, error) {
	row := q.db.QueryRowContext(ctx, getGameResult, gameUuid)
	var i GameResult
	err := row.Scan(
		&i.ID,
		&i.GameUuid,
		&i.LayoutSource,
		&i.ShipCount,
		&i.Shots,
		&i.Hits,
		&i.Misses,
		&i.Won,
		&i.ShotHistory,
		&i.StartedAt,
		&i.FinishedAt,
	)
	return i, err
}

const insertGameResult = `-- name: InsertGameResult :one
INSERT INTO game_results (
    game_uuid, layout_source, ship_count, shots, hits, misses, won, shot_history, started_at, finished_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING id
`

type InsertGameResultParams struct {
	GameUuid     string                `json:"game_uuid"`
	LayoutSource string                `json:"layout_source"`
	ShipCount    int32                 `json:"ship_count"`
	Shots        int32                 `json:"shots"`
	Hits         int32                 `json:"hits"`
	Misses       int32                 `json:"misses"`
	Won          bool                  `json:"won"`
	ShotHistory  pqtype.NullRawMessage `json:"shot_history"`
	StartedAt    time.Time             `json:"started_at"`
	FinishedAt   sql.NullTime          `json:"finished_at"`
}

func (q *Queries) InsertGameResult(ctx context.Context, arg InsertGameResultParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, insertGameResult,
		arg.GameUuid,
		arg.LayoutSource,
		arg.ShipCount,
		arg.Shots,
		arg.Hits,
		arg.Misses,
		arg.Won,
		arg.ShotHistory,
		arg.StartedAt,
		arg.FinishedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}
