// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger. The zero value logs JSON at info
// level to stderr.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string

	// Format is json or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Version, when set, is stamped on every entry next to the service name.
	Version string

	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before main parses configuration
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"
	log = newLogger(os.Stderr, Options{})
}

// Init replaces the process logger. Unknown levels or formats are rejected
// and leave the current logger in place.
func Init(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(strings.ToLower(opts.Level)); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	switch opts.Format {
	case "", "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	default:
		return fmt.Errorf("log format %q: want json or console", opts.Format)
	}

	mu.Lock()
	defer mu.Unlock()
	zerolog.SetGlobalLevel(level)
	log = newLogger(out, opts)
	return nil
}

func newLogger(out io.Writer, opts Options) zerolog.Logger {
	c := zerolog.New(out).With().Timestamp().Str("service", "venuelens")
	if opts.Version != "" {
		c = c.Str("version", opts.Version)
	}
	if opts.Caller {
		c = c.Caller()
	}
	return c.Logger()
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the process logger. Used by tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With creates a child logger context.
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()
	return log.With()
}

// Info starts a new message with info level.
//
//	logging.Info().Msg("Server starting")
func Info() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info()
}

// Warn starts a new message with warning level.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Error starts a new message with error level.
//
//	logging.Error().Err(err).Str("page", slug).Msg("Render failed")
func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

// Fatal logs at fatal level, then calls os.Exit(1).
func Fatal() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Fatal()
}
