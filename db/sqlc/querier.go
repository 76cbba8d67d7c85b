package sqlc

import (
	"context"
)

type Querier interface {
	CountGameResults(ctx context.Context) (int64, error)
	CountWins(ctx context.Context) (int64, error)
	GetGameResult(ctx context.Context, gameUuid string) (GameResult, error)
	InsertGameResult(ctx context.Context, arg InsertGameResultParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
