package sqlc

import (
	"database/sql"
	"time"

	"github.com/sqlc-dev/pqtype"
)

type GameResult struct {
	ID           int64                 `json:"id"`
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
