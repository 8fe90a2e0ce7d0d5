package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Prompt        string `toml:"prompt"`
	Echo          *bool  `toml:"echo"`
	MaxLineLength int    `toml:"max_line_length"`
	MaxTokens     int    `toml:"max_tokens"`
	LogLevel      string `toml:"log_level"`
	Watch         *bool  `toml:"watch"`
	WatchDebounce string `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.setcalc/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".setcalc", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("prompt", fc.Prompt, &cfg.Prompt)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("max-line-length", fc.MaxLineLength, &cfg.MaxLineLength)
	s.setInt("max-tokens", fc.MaxTokens, &cfg.MaxTokens)

	if err := s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBool("echo", fc.Echo, &cfg.Echo)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
