package internal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage       string
	LayoutFile  string
	LogLevel    string
	DatabaseURL string
}

// Reads the environment, loading .env first outside of prod.
// The first positional argument, if any, overrides LAYOUT_FILE.
func LoadConfig(args []string, defaultLayout string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		// a missing .env is fine in dev
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Stage:       GetEnv("STAGE", StageDev),
		LayoutFile:  GetEnv("LAYOUT_FILE", defaultLayout),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("invalid type of development stage: %s", cfg.Stage)
	}
	if len(args) > 0 && args[0] != "" {
		cfg.LayoutFile = args[0]
	}

	return cfg, nil
}

func GetEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Configures the global zerolog logger. Dev gets a console writer,
// prod writes JSON.
func SetupLogger(cfg Config, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.Stage == StageProd {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}
