package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.Logging)

	lists := words.Load(cfg.Words.RootsFile, cfg.Words.DictionaryFile)
	if len(lists.Roots) == 0 {
		log.Warn().Str("fallback", words.FallbackRoot).Msg("no root words loaded, every round will use the fallback")
	}

	dict, err := dictionary.Open(cfg.Words.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Words.DBPath).Msg("failed to open dictionary")
	}
	defer dict.Close()

	n, err := dict.Import(context.Background(), cfg.Words.Language, lists.Dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed dictionary")
	}
	log.Info().Int("inserted", n).Int("roots", len(lists.Roots)).Msg("word lists ready")

	games := store.NewMemoryStore()
	go store.RunJanitor(context.Background(), games, cfg.Server.GameTTL, time.Minute)

	srv := httpserver.New(cfg, games, dict, lists.Roots)
	log.Info().Str("port", cfg.Server.Port).Msg("starting go-server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(c config.LoggingConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
