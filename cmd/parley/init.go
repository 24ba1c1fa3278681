package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/parley-chat/parley/internal/config"
	"github.com/parley-chat/parley/internal/history"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd interactively writes a starter configuration file.
func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Interactively create a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "parley.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			def := config.Default()
			backend := def.History.Backend
			historyPath := def.History.Path
			capacity := strconv.Itoa(def.History.Capacity)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("History backend").
						Options(huh.NewOptions(history.Backends()...)...).
						Value(&backend),
					huh.NewInput().
						Title("History path").
						Description("File the conversation is persisted to").
						Value(&historyPath),
					huh.NewInput().
						Title("History capacity").
						Description("Number of turns kept").
						Validate(validatePositiveInt).
						Value(&capacity),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("init: %w", err)
			}

			cfg := config.Default()
			cfg.History.Backend = backend
			cfg.History.Path = historyPath
			cfg.History.Capacity, _ = strconv.Atoi(strings.TrimSpace(capacity))
			if err := config.Validate(cfg); err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("init: marshal config: %w", err)
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o700); err != nil {
					return fmt.Errorf("init: create directory %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("init: write %s: %w", path, err)
			}

			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	return cmd
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}
	return nil
}
