// SPDX-License-Identifier: Apache-2.0

// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Init sets the global logger. Output goes to stderr so that command output
// on stdout stays machine readable.
func Init(level, format string) error {
	return InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level, format string) error {
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch strings.ToLower(format) {
	case FormatConsole, "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().
			Timestamp().
			Str("service", "edeval").
			Logger()
	case FormatJSON:
		log.Logger = zerolog.New(w).
			With().
			Timestamp().
			Str("service", "edeval").
			Logger()
	default:
		return fmt.Errorf("invalid log format %q (must be console or json)", format)
	}
	return nil
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	return &log.Logger
}
