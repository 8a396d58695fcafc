package main

import (
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/tui"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

func main() {
	_ = godotenv.Load()

	var cfg Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		setupLogging("info")
		log.Fatal().Err(err).Msg("bad configuration")
	}
	setupLogging(cfg.LogLevel)

	dict, closeDict, err := openDictionary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	defer closeDict()

	eng, err := game.NewEngine(cfg.Language, dict, cfg.MaxAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("no terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("terminal init failed")
	}

	logs, err := logToFile(cfg.LogFile)
	if err != nil {
		screen.Fini()
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("cannot open log file")
	}
	log.Info().Str("language", cfg.Language.Name()).Str("mode", cfg.Mode).
		Str("backend", cfg.WordsBackend).Msg("starting go-tui")

	app := tui.New(screen, dict, eng, tui.Options{
		WordLength:   cfg.WordLength,
		MaxAttempts:  cfg.MaxAttempts,
		DebugOverlay: cfg.DebugOverlay,
	})
	app.Run()
	screen.Fini()
	logs.Close()

	t := app.Tally()
	log.Info().Int("played", t.GamesPlayed).Int("wins", t.Wins).Int("max_streak", t.MaxStreak).Msg("bye")
}

// openDictionary builds the configured word source and returns its cleanup.
func openDictionary(cfg Config) (tui.Dictionary, func(), error) {
	var (
		src     daily.Source
		cleanup = func() {}
	)
	switch cfg.WordsBackend {
	case backendSQLite:
		db, err := store.Open(cfg.WordsDSN, func(lang alphabet.Language, length int) ([]string, []string, error) {
			return words.Load(cfg.WordsDir, lang, length)
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("close word store")
			}
		}
		if err := db.SetLanguageAndWordLength(cfg.Language, cfg.WordLength); err != nil {
			cleanup()
			return nil, nil, err
		}
		src = db
	default:
		list, err := words.New(cfg.WordsDir, cfg.Language, cfg.WordLength)
		if err != nil {
			return nil, nil, err
		}
		answers, allowed := list.Stats()
		log.Debug().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")
		src = list
	}

	if cfg.Mode == modeDaily {
		d := daily.New(src, cfg.DailySalt, time.Now)
		log.Info().Str("date", d.Today()).Msg("daily mode")
		return d, cleanup, nil
	}
	return src, cleanup, nil
}
