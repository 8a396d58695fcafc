package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/namsral/flag"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

var errInvalidConfig = errors.New("invalid config")

const (
	backendMemory = "memory"
	backendSQLite = "sqlite"

	modeClassic = "classic"
	modeDaily   = "daily"
)

// Config is read from flags, falling back to WORDLE_* environment variables
// (a .env file is loaded into the environment first).
type Config struct {
	LanguageName string
	Language     alphabet.Language
	WordLength   int
	MaxAttempts  int

	WordsDir     string
	WordsBackend string
	WordsDSN     string

	Mode      string
	DailySalt string

	LogLevel     string
	LogFile      string
	DebugOverlay bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("wordle", "WORDLE", flag.ContinueOnError)
	fs.StringVar(&c.LanguageName, "language", "english", "word list language: english or russian (a BCP 47 tag also works)")
	fs.IntVar(&c.WordLength, "word-length", 5, "letters per word")
	fs.IntVar(&c.MaxAttempts, "max-attempts", 6, "guesses per round")
	fs.StringVar(&c.WordsDir, "words-dir", "", "directory with <LANG>_DICTIONARY_<N>L.txt files; embedded lists when empty")
	fs.StringVar(&c.WordsBackend, "words-backend", backendMemory, "dictionary backend: memory or sqlite")
	fs.StringVar(&c.WordsDSN, "words-dsn", ":memory:", "sqlite DSN for the sqlite backend")
	fs.StringVar(&c.Mode, "mode", modeClassic, "classic (random word each round) or daily (word of the day)")
	fs.StringVar(&c.DailySalt, "daily-salt", "wordle", "key for the word-of-the-day hash")
	fs.StringVar(&c.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "zerolog level")
	fs.StringVar(&c.LogFile, "log-file", "wordle.log", "log destination while the game is running; empty discards")
	fs.BoolVar(&c.DebugOverlay, "debug-overlay", false, "start with the frame-time overlay shown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.validate()
}

func (c *Config) validate() error {
	lang, err := alphabet.Parse(c.LanguageName)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	c.Language = lang

	switch {
	case c.WordLength < 1:
		return fmt.Errorf("%w: word-length must be positive, got %d", errInvalidConfig, c.WordLength)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max-attempts must be positive, got %d", errInvalidConfig, c.MaxAttempts)
	case c.WordsBackend != backendMemory && c.WordsBackend != backendSQLite:
		return fmt.Errorf("%w: unknown words-backend %q", errInvalidConfig, c.WordsBackend)
	case c.Mode != modeClassic && c.Mode != modeDaily:
		return fmt.Errorf("%w: unknown mode %q", errInvalidConfig, c.Mode)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
