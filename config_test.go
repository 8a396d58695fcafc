package main

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

func TestConfigDefaults(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load(nil))

	is.Equal(c.Language, alphabet.English)
	is.Equal(c.WordLength, 5)
	is.Equal(c.MaxAttempts, 6)
	is.Equal(c.WordsBackend, backendMemory)
	is.Equal(c.WordsDSN, ":memory:")
	is.Equal(c.Mode, modeClassic)
	is.Equal(c.LogFile, "wordle.log")
	is.True(!c.DebugOverlay)
}

func TestConfigFlags(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load([]string{
		"-language", "ru",
		"-max-attempts", "8",
		"-words-backend", "sqlite",
		"-mode", "daily",
		"-debug-overlay",
	}))

	is.Equal(c.Language, alphabet.Russian)
	is.Equal(c.MaxAttempts, 8)
	is.Equal(c.WordsBackend, backendSQLite)
	is.Equal(c.Mode, modeDaily)
	is.True(c.DebugOverlay)
}

func TestConfigEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDLE_LANGUAGE", "russian")
	t.Setenv("WORDLE_MAX_ATTEMPTS", "4")

	var c Config
	is.NoErr(c.Load(nil))
	is.Equal(c.Language, alphabet.Russian)
	is.Equal(c.MaxAttempts, 4)

	// flags win over the environment
	var f Config
	is.NoErr(f.Load([]string{"-max-attempts", "7"}))
	is.Equal(f.MaxAttempts, 7)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown language", []string{"-language", "klingon"}},
		{"zero word length", []string{"-word-length", "0"}},
		{"negative attempts", []string{"-max-attempts", "-1"}},
		{"unknown backend", []string{"-words-backend", "redis"}},
		{"unknown mode", []string{"-mode", "weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			var c Config
			err := c.Load(tt.args)
			is.True(errors.Is(err, errInvalidConfig))
		})
	}
}
