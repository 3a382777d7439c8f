package main // import "github.com/tonobo/safesnake"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// GameLog opens the per-game request log inside dir. An empty dir disables it.
func GameLog(dir, gameID string) (io.WriteCloser, error) {
	if dir == "" {
		return nopWriteCloser{io.Discard}, nil
	}
	name := filepath.Base(gameID)
	if name == "." || name == string(filepath.Separator) {
		name = "unknown"
	}
	f, err := os.OpenFile(filepath.Join(dir, fmt.Sprintf("access-snake-%s.log", name)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open game log: %w", err)
	}
	return f, nil
}
