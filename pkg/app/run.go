// Package app provides the shared entry point that wires configuration,
// storage, classification, and the terminal shell into a running chat
// session.
package app

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parley-chat/parley/internal/config"
	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/internal/respond"
	"github.com/parley-chat/parley/internal/session"
	"github.com/parley-chat/parley/internal/shell"
)

// RunParams configures a chat session.
type RunParams struct {
	// ConfigPath is an explicit path to the YAML configuration file.
	// If empty, config.ResolvePath is consulted; when no file exists
	// anywhere, built-in defaults apply.
	ConfigPath string

	// HistoryPath overrides the configured persisted-state location.
	HistoryPath string

	// NoAnimation disables the typewriter output effect.
	NoAnimation bool

	// Input and Output default to stdin and stdout. Tests inject both.
	Input  io.Reader
	Output io.Writer

	// LogLevel sets the minimum log level. Defaults to slog.LevelInfo.
	LogLevel slog.Level

	// RandSource seeds response-pool selection. Nil means time-seeded.
	RandSource rand.Source

	// Signals controls whether OS interrupt signals terminate the
	// session. Disabled in tests.
	Signals bool
}

// Run loads configuration, opens the history backend, and drives the
// interactive shell until the session terminates. Every graceful
// outcome (exit command, end of input, interrupt) returns nil.
func Run(params RunParams) error {
	cfgPath := params.ConfigPath
	if cfgPath == "" {
		cfgPath = config.ResolvePath()
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if params.HistoryPath != "" {
		cfg.History.Path = params.HistoryPath
	}
	if params.NoAnimation {
		cfg.Shell.TypingIntervalMS = 0
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: params.LogLevel,
	}))

	in := params.Input
	if in == nil {
		in = os.Stdin
	}
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	store, err := history.Open(cfg.History.Backend, history.Options{Path: cfg.History.Path})
	if err != nil {
		return err
	}
	defer closeStore(store, logger)

	log := history.New(cfg.History.Capacity, store, logger)
	selector := respond.NewSelector(respond.DefaultTables(), params.RandSource)
	controller := session.New(log, selector, session.DefaultMessages(cfg.History.Path), logger)

	ctx := context.Background()
	if params.Signals {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	sh := shell.New(shell.Config{
		Input:          in,
		Output:         out,
		Controller:     controller,
		Log:            log,
		TypingInterval: time.Duration(cfg.Shell.TypingIntervalMS) * time.Millisecond,
		Logger:         logger,
	})

	return sh.Run(ctx)
}

// closeStore releases backends that hold resources (e.g. sqlite).
func closeStore(store history.Store, logger *slog.Logger) {
	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("closing history store", "error", err)
		}
	}
}
