package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := internal.LoadConfig(args, mb.DefaultLayoutFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	internal.SetupLogger(cfg, stderr)

	fleet, err := mb.LoadFleetFile(cfg.LayoutFile)
	if err != nil {
		log.Error().Err(err).Str("layout", cfg.LayoutFile).Msg("failed to load layout")
		fmt.Fprintln(stdout, layoutErrMessage(err))
		return 1
	}

	var recorder api.ResultRecorder
	if cfg.DatabaseURL != "" {
		conn, err := db.ConnectToDb(cfg.DatabaseURL)
		if err != nil {
			// the ledger is optional, play on without it
			log.Warn().Err(err).Msg("results will not be recorded")
		} else {
			defer conn.Close()
			recorder = sqlc.NewDbManager(sqlc.New(conn)).Results
		}
	}

	rp := api.NewRequestProcessor(mb.NewBattleshipGameManager(), recorder, cfg.LayoutFile)
	game, err := rp.Process(fleet, stdin, stdout)
	if err != nil {
		log.Error().Err(err).Msg("session ended with error")
		return 1
	}

	summary := game.Summary()
	log.Info().
		Str("game", game.Uuid()).
		Stringer("status", summary.Status).
		Int("shots", summary.Shots).
		Int("hits", summary.Hits).
		Int("misses", summary.Misses).
		Msg("session ended")
	return 0
}

// The messages a player sees when the layout can not be used.
func layoutErrMessage(err error) string {
	var detail string
	var le *cerr.LayoutErr
	if errors.As(err, &le) && le.Line() > 0 {
		detail = fmt.Sprintf(" (line %d)", le.Line())
	}

	switch {
	case !cerr.IsValidationErr(err):
		return "File can not be read!"
	case errors.Is(err, cerr.ErrOverlappingShips), errors.Is(err, cerr.ErrDuplicateCellAcrossShips):
		return "There are overlapping ships in the input file!" + detail
	case errors.Is(err, cerr.ErrEmptyLayout):
		return "There are no ships in the input file!"
	default:
		return "Error in ship coordinates!" + detail
	}
}
