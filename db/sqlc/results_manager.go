package sqlc

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

type ResultsManager struct {
	queries Querier
}

func NewResultsManager(queries Querier) *ResultsManager {
	return &ResultsManager{queries: queries}
}

// Appends the outcome of a finished or abandoned game to the ledger.
// Nothing stored here can be used to resume a game.
func (r *ResultsManager) RecordGame(ctx context.Context, game *mb.Game, layoutSource string) (int64, error) {
	history, err := json.Marshal(game.Shots())
	if err != nil {
		return 0, errors.Wrap(err, "marshal shot history")
	}

	summary := game.Summary()
	params := InsertGameResultParams{
		GameUuid:     game.Uuid(),
		LayoutSource: layoutSource,
		ShipCount:    int32(summary.TotalShips),
		Shots:        int32(summary.Shots),
		Hits:         int32(summary.Hits),
		Misses:       int32(summary.Misses),
		Won:          summary.Status == mb.GameStatusWon,
		ShotHistory:  pqtype.NullRawMessage{RawMessage: history, Valid: true},
		StartedAt:    game.CreatedAt(),
	}
	if finishedAt := game.FinishedAt(); !finishedAt.IsZero() {
		params.FinishedAt = sql.NullTime{Time: finishedAt, Valid: true}
	}

	id, err := r.queries.InsertGameResult(ctx, params)
	if err != nil {
		return 0, errors.Wrapf(err, "insert result of game %s", game.Uuid())
	}
	return id, nil
}

func (r *ResultsManager) GetGamesPlayedCount(ctx context.Context) (int64, error) {
	return r.queries.CountGameResults(ctx)
}

func (r *ResultsManager) GetGamesWonCount(ctx context.Context) (int64, error) {
	return r.queries.CountWins(ctx)
}

func (r *ResultsManager) GetGameResult(ctx context.Context, gameUuid string) (GameResult, error) {
	return r.queries.GetGameResult(ctx, gameUuid)
}
