package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/setcalc/internal/adapters/lines"
	"github.com/bft-labs/setcalc/internal/lexer"
	"github.com/bft-labs/setcalc/internal/session"
	"github.com/bft-labs/setcalc/pkg/log"
)

// Config holds CLI configuration for setcalc.
type Config struct {
	// Script is the command file to run; empty means read stdin interactively.
	Script string

	Prompt string
	Echo   bool

	MaxLineLength int
	MaxTokens     int

	LogLevel string

	Watch         bool
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Prompt:        session.DefaultPrompt,
		Echo:          true,
		MaxLineLength: lines.DefaultMaxLength,
		MaxTokens:     lexer.DefaultMaxTokens,
		LogLevel:      "info",
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max line length must be positive")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Watch {
		if c.Script == "" {
			return fmt.Errorf("watch requires a script file")
		}
		if c.WatchDebounce <= 0 {
			return fmt.Errorf("watch debounce must be positive")
		}
	}
	return nil
}

// Interactive reports whether commands come from a terminal rather than a script.
func (c *Config) Interactive() bool {
	return c.Script == ""
}

// SessionConfig derives the session settings. Echo only applies to scripts.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Prompt:      c.Prompt,
		Interactive: c.Interactive(),
		Echo:        c.Echo && !c.Interactive(),
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if positive.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
