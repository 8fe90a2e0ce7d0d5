// Package log provides the logging abstraction used across setcalc.
//
// Components depend on the Logger interface only. The zerolog adapter is
// wired by the command-line entrypoint; library callers and tests use the
// no-op logger.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("session finished", log.Int("lines", 12))
package log
