package api

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type testRecorder struct {
	games   []*mb.Game
	sources []string
	err     error
}

func (r *testRecorder) RecordGame(ctx context.Context, game *mb.Game, layoutSource string) (int64, error) {
	r.games = append(r.games, game)
	r.sources = append(r.sources, layoutSource)
	return int64(len(r.games)), r.err
}

func newTestFleet(t *testing.T, layout string) *mb.Fleet {
	t.Helper()
	fleet, err := mb.LoadLayout(strings.NewReader(layout))
	if err != nil {
		t.Fatal(err)
	}
	return fleet
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name           string
		layout         string
		input          string
		expectedLines  []string
		expectedStatus mb.GameStatus
		expectedShots  int
	}{
		{
			name:           "win with a miss in between",
			layout:         "Sub;B2;B3",
			input:          "B2\nc9\nB3\n",
			expectedLines:  []string{MsgPrompt, MsgStart, MsgHit, MsgMiss, MsgHit, "SUB SUNK!", MsgAllShipsSunk, MsgWellDone},
			expectedStatus: mb.GameStatusWon,
			expectedShots:  3,
		},
		{
			name:           "input after victory is ignored",
			layout:         "Sub;B2",
			input:          "B2\nC3\nC4\n",
			expectedLines:  []string{MsgPrompt, MsgStart, MsgHit, "SUB SUNK!", MsgAllShipsSunk, MsgWellDone},
			expectedStatus: mb.GameStatusWon,
			expectedShots:  1,
		},
		{
			name:           "invalid and repeated input never reach the game",
			layout:         "Sub;B2;B3",
			input:          "Z9\n\nB2\nB2\nstatus\nquit\nB3\n",
			expectedLines:  []string{MsgPrompt, MsgStart, "INVALID COORDINATE: Z9", MsgHit, "ALREADY SHOT AT B2", "shots: 1\thits: 1\tmisses: 0\tships sunk: 0/1"},
			expectedStatus: mb.GameStatusInProgress,
			expectedShots:  1,
		},
		{
			name:           "input ends before victory",
			layout:         "Sub;B2;B3",
			input:          "A0",
			expectedLines:  []string{MsgPrompt, MsgStart, MsgMiss},
			expectedStatus: mb.GameStatusInProgress,
			expectedShots:  1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bgm := mb.NewBattleshipGameManager()
			recorder := &testRecorder{}
			rp := NewRequestProcessor(bgm, recorder, "test.txt")

			var out bytes.Buffer
			game, err := rp.Process(newTestFleet(t, test.layout), strings.NewReader(test.input), &out)
			if err != nil {
				t.Fatal(err)
			}

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if strings.Join(lines, "|") != strings.Join(test.expectedLines, "|") {
				t.Fatalf("expected output:\n%s\ngot:\n%s", strings.Join(test.expectedLines, "\n"), out.String())
			}

			if game.Status() != test.expectedStatus {
				t.Fatalf("expected status: %s\tgot: %s", test.expectedStatus, game.Status())
			}
			if len(game.Shots()) != test.expectedShots {
				t.Fatalf("expected shots: %d\tgot: %d", test.expectedShots, len(game.Shots()))
			}

			if len(recorder.games) != 1 || recorder.games[0] != game || recorder.sources[0] != "test.txt" {
				t.Fatal("expected the game to be recorded once")
			}

			if _, err := bgm.GetGame(game.Uuid()); !errors.Is(err, cerr.ErrGameNotExists) {
				t.Fatalf("expected game to be terminated, got: %v", err)
			}
		})
	}
}

func TestProcessRecorderFailure(t *testing.T) {
	recorder := &testRecorder{err: errors.New("db down")}
	rp := NewRequestProcessor(mb.NewBattleshipGameManager(), recorder, "test.txt")

	var out bytes.Buffer
	game, err := rp.Process(newTestFleet(t, "Sub;B2"), strings.NewReader("B2\n"), &out)
	if err != nil {
		t.Fatalf("recorder failure must not fail the session: %v", err)
	}
	if !game.IsWon() {
		t.Fatal("expected game to be won")
	}
}

func TestProcessWithoutRecorder(t *testing.T) {
	rp := NewRequestProcessor(mb.NewBattleshipGameManager(), nil, "test.txt")

	var out bytes.Buffer
	if _, err := rp.Process(newTestFleet(t, "Sub;B2"), strings.NewReader("A1\nB2\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), MsgWellDone) {
		t.Fatalf("expected victory message\tgot: %s", out.String())
	}
}
