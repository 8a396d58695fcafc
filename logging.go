package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging sends the global logger to stderr at the given level. An
// unknown level keeps zerolog's default.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

// logToFile points the global logger at path while the terminal belongs to the
// game. An empty path discards logs. The returned closer restores stderr.
func logToFile(path string) (io.Closer, error) {
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return restoreStderr{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return restoreStderr{f: f}, nil
}

type restoreStderr struct{ f *os.File }

func (r restoreStderr) Close() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if r.f == nil {
		return nil
	}
	return r.f.Close()
}
