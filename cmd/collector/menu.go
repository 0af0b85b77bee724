package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-collector/internal/platform/tui"
	"github.com/vovakirdan/star-collector/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns to the menu.

Examples:
  collector menu
  collector menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	runtime := runtimeConfig()
	for {
		result, err := tui.RunMenu(runtime)
		if err != nil {
			return err
		}
		runtime = result.Config
		if result.Quit {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		run := runtime
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, run, gameOptions(cfg, logger)); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
