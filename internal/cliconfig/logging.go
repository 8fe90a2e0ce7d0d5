package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/setcalc/pkg/log"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// Logger returns the package logger used before configuration is loaded.
func Logger() zerolog.Logger {
	return logger
}

// NewLogger returns the structured logger for c, writing to stderr.
func (c *Config) NewLogger() (log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewZerologAdapterWithLogger(logger.Level(level)), nil
}
