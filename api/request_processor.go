package api

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	CommandStatus = "STATUS"
	CommandQuit   = "QUIT"

	recordCtxTimeout = time.Second * 10
)

const (
	MsgPrompt       = "ENTER A COORDINATE TO SHOOT (A0-J9)"
	MsgStart        = "Start by shooting"
	MsgHit          = "HIT!"
	MsgMiss         = "MISS!"
	MsgAllShipsSunk = "ALL ENEMY SHIPS SUNK!"
	MsgWellDone     = "WELL DONE!"
)

// Stores the outcome of a session once it ends.
type ResultRecorder interface {
	RecordGame(ctx context.Context, game *mb.Game, layoutSource string) (int64, error)
}

// RequestProcessor drives one game from line based input: every line
// is a coordinate to shoot at or a command.
type RequestProcessor struct {
	gameManager  mb.GameManager
	recorder     ResultRecorder
	layoutSource string
}

// recorder may be nil, in which case results are not kept.
func NewRequestProcessor(gameManager mb.GameManager, recorder ResultRecorder, layoutSource string) RequestProcessor {
	return RequestProcessor{
		gameManager:  gameManager,
		recorder:     recorder,
		layoutSource: layoutSource,
	}
}

// Plays a new game on fleet until it is won, the input ends or the
// player quits. The game is returned in its final state.
func (rp RequestProcessor) Process(fleet *mb.Fleet, in io.Reader, out io.Writer) (*mb.Game, error) {
	game := rp.gameManager.CreateGame(fleet)
	gameLog := log.With().Str("game", game.Uuid()).Logger()
	gameLog.Info().Int("ships", fleet.Len()).Str("layout", rp.layoutSource).Msg("game started")

	defer func() {
		rp.recordResult(game)
		rp.gameManager.TerminateGame(game.Uuid())
	}()

	w := bufio.NewWriter(out)
	defer w.Flush()

	if err := writeLines(w, MsgPrompt, MsgStart); err != nil {
		return game, err
	}

	scanner := bufio.NewScanner(in)

sessionLoop:
	for scanner.Scan() {
		input := strings.ToUpper(strings.TrimSpace(scanner.Text()))

		switch input {
		case "":
			continue sessionLoop

		case CommandQuit:
			gameLog.Info().Msg("player quit")
			break sessionLoop

		case CommandStatus:
			if err := writeLines(w, formatSummary(game.Summary())); err != nil {
				return game, err
			}
			continue sessionLoop
		}

		c, err := mb.ParseCoordinate(input)
		if err != nil {
			if err := writeLines(w, fmt.Sprintf("INVALID COORDINATE: %s", input)); err != nil {
				return game, err
			}
			continue sessionLoop
		}

		// a cell can be shot once, like a disabled button on the board
		if game.Fired(c) {
			if err := writeLines(w, fmt.Sprintf("ALREADY SHOT AT %s", c)); err != nil {
				return game, err
			}
			continue sessionLoop
		}

		outcome, status := game.Fire(c)
		gameLog.Debug().Str("coordinate", c.String()).Stringer("outcome", outcome).Stringer("status", status).Msg("shot")

		lines := []string{MsgMiss}
		if outcome == mb.ShotHit {
			lines = []string{MsgHit}
			if ship, prs := fleet.ShipAt(c); prs && ship.Sunk() {
				lines = append(lines, fmt.Sprintf("%s SUNK!", strings.ToUpper(ship.Name())))
			}
		}
		if status == mb.GameStatusWon {
			lines = append(lines, MsgAllShipsSunk, MsgWellDone)
		}

		if err := writeLines(w, lines...); err != nil {
			return game, err
		}

		if status == mb.GameStatusWon {
			gameLog.Info().Int("shots", len(game.Shots())).Msg("game won")
			break sessionLoop
		}
	}

	if err := scanner.Err(); err != nil {
		return game, err
	}
	return game, nil
}

func (rp RequestProcessor) recordResult(game *mb.Game) {
	if rp.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordCtxTimeout)
	defer cancel()

	id, err := rp.recorder.RecordGame(ctx, game, rp.layoutSource)
	if err != nil {
		// for now not failing the session for it
		log.Warn().Err(err).Str("game", game.Uuid()).Msg("record game result")
		return
	}
	log.Debug().Int64("id", id).Str("game", game.Uuid()).Msg("game result recorded")
}

func formatSummary(s mb.Summary) string {
	return fmt.Sprintf("shots: %d\thits: %d\tmisses: %d\tships sunk: %d/%d", s.Shots, s.Hits, s.Misses, s.SunkShips, s.TotalShips)
}

func writeLines(w *bufio.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
