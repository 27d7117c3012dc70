package main

import (
	"os"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// setupLog sends gnark's and our logs to stderr so they never mix with a
// document written to stdout.
func setupLog(quiet bool) {
	if quiet {
		logger.Disable()
		return
	}
	logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger())
}
