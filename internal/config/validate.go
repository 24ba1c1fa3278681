package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/parley-chat/parley/internal/history"
)

// Validate checks the structural validity of a Config. It verifies the
// version field, that the history backend is registered, and that the
// log capacity is positive.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if cfg.History.Backend == "" {
		errs = append(errs, errors.New("config: history.backend is required"))
	} else if !slices.Contains(history.Backends(), cfg.History.Backend) {
		errs = append(errs, fmt.Errorf("config: unknown history backend %q (registered: %v)",
			cfg.History.Backend, history.Backends()))
	}

	if cfg.History.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("config: history.capacity must be positive, got %d", cfg.History.Capacity))
	}

	if cfg.Shell.TypingIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("config: shell.typing_interval_ms must be non-negative, got %d", cfg.Shell.TypingIntervalMS))
	}

	return errors.Join(errs...)
}
