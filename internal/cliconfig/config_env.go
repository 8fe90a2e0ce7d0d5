package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SETCALC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("prompt", os.Getenv("SETCALC_PROMPT"), &cfg.Prompt)
	s.setString("log-level", os.Getenv("SETCALC_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("max-line-length", os.Getenv("SETCALC_MAX_LINE_LENGTH"), &cfg.MaxLineLength); err != nil {
		return err
	}
	if err := s.setIntFromString("max-tokens", os.Getenv("SETCALC_MAX_TOKENS"), &cfg.MaxTokens); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("SETCALC_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBoolFromString("echo", os.Getenv("SETCALC_ECHO"), &cfg.Echo)
	s.setBoolFromString("watch", os.Getenv("SETCALC_WATCH"), &cfg.Watch)

	return nil
}
