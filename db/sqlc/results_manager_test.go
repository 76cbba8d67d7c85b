package sqlc

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// Matches the shot history column against the expected number of shots.
type shotHistoryArg struct {
	shots int
}

func (a shotHistoryArg) Match(v driver.Value) bool {
	var raw []byte
	switch b := v.(type) {
	case []byte:
		raw = b
	case json.RawMessage:
		raw = b
	default:
		return false
	}

	var history []map[string]string
	if err := json.Unmarshal(raw, &history); err != nil {
		return false
	}
	if len(history) != a.shots {
		return false
	}
	return history[0]["coordinate"] != "" && history[0]["outcome"] != ""
}

func newTestDbManager(t *testing.T) (DbManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db)), mock
}

func playTestGame(t *testing.T, tokens ...string) *mb.Game {
	t.Helper()
	fleet, err := mb.LoadLayout(strings.NewReader("Destroyer;A0;A1\nSub;J9"))
	if err != nil {
		t.Fatal(err)
	}

	game := mb.NewGame(fleet)
	for _, token := range tokens {
		c, err := mb.ParseCoordinate(token)
		if err != nil {
			t.Fatal(err)
		}
		game.Fire(c)
	}
	return game
}

func TestRecordGame(t *testing.T) {
	tests := []struct {
		name           string
		shots          []string
		expectedHits   int
		expectedMisses int
		expectedWon    bool
	}{
		{
			name:         "won game",
			shots:        []string{"A0", "A1", "J9"},
			expectedHits: 3,
			expectedWon:  true,
		},
		{
			name:           "abandoned game",
			shots:          []string{"A0", "B5"},
			expectedHits:   1,
			expectedMisses: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dbManager, mock := newTestDbManager(t)
			game := playTestGame(t, test.shots...)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_results")).
				WithArgs(
					game.Uuid(),
					mb.DefaultLayoutFile,
					2,
					len(test.shots),
					test.expectedHits,
					test.expectedMisses,
					test.expectedWon,
					shotHistoryArg{shots: len(test.shots)},
					sqlmock.AnyArg(),
					sqlmock.AnyArg(),
				).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

			ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
			defer cancel()

			id, err := dbManager.Results.RecordGame(ctx, game, mb.DefaultLayoutFile)
			if err != nil {
				t.Fatal(err)
			}
			if id != 7 {
				t.Fatalf("expected id: %d\tgot: %d", 7, id)
			}

			if err = mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations were not met: %v", err)
			}
		})
	}
}

func TestRecordGameQueryFails(t *testing.T) {
	dbManager, mock := newTestDbManager(t)
	game := playTestGame(t, "A0")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_results")).
		WillReturnError(errors.New("connection refused"))

	if _, err := dbManager.Results.RecordGame(context.Background(), game, mb.DefaultLayoutFile); err == nil {
		t.Fatal("expected insert error to surface")
	}
}

func TestGamesCounts(t *testing.T) {
	dbManager, mock := newTestDbManager(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM game_results")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM game_results WHERE won = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	played, err := dbManager.Results.GetGamesPlayedCount(ctx)
	if err != nil {
		t.Fatalf("failed to fetch played games: %v", err)
	}
	won, err := dbManager.Results.GetGamesWonCount(ctx)
	if err != nil {
		t.Fatalf("failed to fetch won games: %v", err)
	}

	if played != 5 || won != 3 {
		t.Fatalf("expected played: 5 won: 3\tgot played: %d won: %d", played, won)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestGetGameResult(t *testing.T) {
	dbManager, mock := newTestDbManager(t)
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	columns := []string{"id", "game_uuid", "layout_source", "ship_count", "shots", "hits", "misses", "won", "shot_history", "started_at", "finished_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM game_results WHERE game_uuid = $1")).
		WithArgs("abcd1234").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "abcd1234", mb.DefaultLayoutFile, 2, 1, 0, 1, false, []byte(`[{"coordinate":"B5","outcome":"miss"}]`), started, nil))

	result, err := dbManager.Results.GetGameResult(context.Background(), "abcd1234")
	if err != nil {
		t.Fatal(err)
	}

	if result.Won || result.FinishedAt.Valid {
		t.Fatalf("expected an unfinished game\tgot: %+v", result)
	}
	if !result.ShotHistory.Valid {
		t.Fatal("expected shot history to be set")
	}

	var shots []mb.Shot
	if err := json.Unmarshal(result.ShotHistory.RawMessage, &shots); err != nil {
		t.Fatal(err)
	}
	if len(shots) != 1 || shots[0].Coordinate.String() != "B5" {
		t.Fatalf("unexpected shot history: %v", shots)
	}
}
