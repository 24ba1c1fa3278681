// Package config handles YAML configuration loading, environment
// variable expansion, and structural validation for parley.
package config

import (
	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/internal/history/jsonfile"
)

// Config is the top-level configuration structure. Every field has a
// working default: parley runs without a configuration file.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	History HistoryConfig `yaml:"history"`
	Shell   ShellConfig   `yaml:"shell"`
}

// HistoryConfig selects and locates the history storage backend.
type HistoryConfig struct {
	// Backend is a registered storage backend name. Defaults to "jsonfile".
	Backend string `yaml:"backend"`

	// Path is the persisted state location. Defaults to the backend's own.
	Path string `yaml:"path"`

	// Capacity bounds the conversation log. Defaults to 10.
	Capacity int `yaml:"capacity"`
}

// ShellConfig tunes the terminal shell.
type ShellConfig struct {
	// TypingIntervalMS is the per-character output animation delay in
	// milliseconds. Zero disables the animation.
	TypingIntervalMS int `yaml:"typing_interval_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		History: HistoryConfig{
			Backend:  "jsonfile",
			Path:     jsonfile.DefaultPath,
			Capacity: history.DefaultCapacity,
		},
		Shell: ShellConfig{
			TypingIntervalMS: 12,
		},
	}
}

// ApplyDefaults fills zero-valued fields after a Load.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.History.Backend == "" {
		c.History.Backend = def.History.Backend
	}
	if c.History.Path == "" && c.History.Backend == def.History.Backend {
		c.History.Path = def.History.Path
	}
	if c.History.Capacity == 0 {
		c.History.Capacity = def.History.Capacity
	}
}
