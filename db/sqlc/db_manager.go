package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Results *ResultsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Results: NewResultsManager(queries),
	}
}
