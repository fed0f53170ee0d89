package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kailai-13/spellforge/internal/distractor"
	"github.com/kailai-13/spellforge/internal/game"
	"github.com/kailai-13/spellforge/internal/groq"
	"github.com/kailai-13/spellforge/internal/httpserver"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	remote := groq.NewFromEnv()
	gen := game.NewGenerator(remote, distractor.New())
	srv := httpserver.New(gen, remote)

	port := getEnv("PORT", "5000")
	log.Info().Str("port", port).Bool("groqConfigured", remote.Configured()).Msg("starting spellforge server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
