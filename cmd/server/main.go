package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gnossen/wordle-solver/internal/history"
	"github.com/gnossen/wordle-solver/internal/httpserver"
	"github.com/gnossen/wordle-solver/internal/solver"
	"github.com/gnossen/wordle-solver/internal/store"
	"github.com/gnossen/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg := solver.DefaultConfig()
	if v := os.Getenv("WORD_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WordLen = n
		}
	}

	vocab, err := words.FromEnv(cfg.WordLen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	db, err := history.Open(getEnv("DB_PATH", "./data/history.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open history db")
	}
	defer db.Close()

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, cfg, vocab)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Int("words", len(vocab)).Msg("starting solver server")
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
