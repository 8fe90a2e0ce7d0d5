package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxLineLength != 255 {
		t.Errorf("MaxLineLength = %v, want 255", cfg.MaxLineLength)
	}
	if cfg.MaxTokens != 20 {
		t.Errorf("MaxTokens = %v, want 20", cfg.MaxTokens)
	}
	if cfg.Prompt != "Enter a command > " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if !cfg.Echo {
		t.Error("Echo = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(mod func(*Config)) Config {
		c := DefaultConfig()
		mod(&c)
		return c
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", valid(func(c *Config) {}), false},
		{"zero line length", valid(func(c *Config) { c.MaxLineLength = 0 }), true},
		{"negative tokens", valid(func(c *Config) { c.MaxTokens = -1 }), true},
		{"unknown log level", valid(func(c *Config) { c.LogLevel = "chatty" }), true},
		{"watch without script", valid(func(c *Config) { c.Watch = true }), true},
		{"watch with script", valid(func(c *Config) { c.Watch = true; c.Script = "cmds.txt" }), false},
		{"watch zero debounce", valid(func(c *Config) {
			c.Watch = true
			c.Script = "cmds.txt"
			c.WatchDebounce = 0
		}), true},
		{"zero debounce without watch", valid(func(c *Config) { c.WatchDebounce = 0 }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SessionConfig(t *testing.T) {
	c := DefaultConfig()
	sc := c.SessionConfig()
	if !sc.Interactive || sc.Echo {
		t.Errorf("stdin session = %+v, want interactive without echo", sc)
	}

	c.Script = "cmds.txt"
	sc = c.SessionConfig()
	if sc.Interactive || !sc.Echo {
		t.Errorf("script session = %+v, want echo without prompt", sc)
	}

	c.Echo = false
	if c.SessionConfig().Echo {
		t.Error("Echo disabled in config but enabled in session")
	}
}

func TestConfig_NewLogger(t *testing.T) {
	c := DefaultConfig()
	if _, err := c.NewLogger(); err != nil {
		t.Errorf("NewLogger() error = %v", err)
	}
	c.LogLevel = "nope"
	if _, err := c.NewLogger(); err == nil {
		t.Error("NewLogger() expected error for bad level")
	}
}

func TestConfigSetter_RespectsChanged(t *testing.T) {
	s := newConfigSetter(map[string]bool{"prompt": true})
	dst := "flag"
	s.setString("prompt", "file", &dst)
	if dst != "flag" {
		t.Errorf("setString overrode changed flag: %q", dst)
	}

	d := time.Second
	if err := s.setDuration("debounce", "bogus", &d); err == nil {
		t.Error("setDuration accepted bogus duration")
	}
}
