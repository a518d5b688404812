// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger applies the configured log level and format to the global
// zerolog logger.
func (cfg *ServerConfig) SetupLogger() {
	switch cfg.Log.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
	}

	if cfg.Log.Format == "json" {
		log.Logger = log.Output(os.Stderr)

		return
	}

	log.Logger = log.Output(consoleWriter(os.Stderr))
}

// consoleWriter returns a zerolog console writer, with color only when the
// file is a terminal.
func consoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isatty.IsTerminal(f.Fd()),
		TimeFormat: time.DateTime,
	}
}
