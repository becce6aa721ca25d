package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/config"
	"github.com/robalobadob/guess/internal/console"
	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/messages"
)

func main() {
	// stdout belongs to the game; diagnostics go to stderr.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	bundle, err := messages.LoadEmbedded()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load message catalogs")
	}
	p := bundle.Printer(cfg.Locale)
	if p.Locale() != cfg.Locale {
		log.Warn().Str("locale", cfg.Locale).Str("using", p.Locale()).Msg("locale not available")
	}

	g, err := game.NewRandom()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := console.NewReader(os.Stdin, os.Stdout, p.Sprintf(messages.KeyInvalidInput))
	if _, err := console.NewLoop(g, src, os.Stdout, p).Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Str("session", g.ID).Msg("game aborted")
	}
}
