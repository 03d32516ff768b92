package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/rng"
	"github.com/robalobadob/numguess/internal/session"
	"github.com/robalobadob/numguess/internal/store"
)

func main() {
	_ = godotenv.Load()
	setupLogging(os.Stderr)

	src := randomSource(envInt("GUESS_SEED", 0))
	s := session.New(console.New(os.Stdin, os.Stdout), session.Config{
		Source: src,
		Store:  store.NewMemoryStore(),
	})
	if err := s.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("terminal i/o failed")
	}
}

// setupLogging routes logs to w, human-readable when w is a terminal.
// The default level keeps the game screen free of routine events.
func setupLogging(w *os.File) {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// randomSource picks a reproducible source for a non-zero seed.
func randomSource(seed int) rng.Source {
	if seed != 0 {
		log.Info().Int("seed", seed).Msg("using seeded random source")
		return rng.NewSeeded(int64(seed))
	}
	return rng.NewCrypto()
}
