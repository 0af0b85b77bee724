package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-collector/internal/core"
	"github.com/vovakirdan/star-collector/internal/games/collector"
	"github.com/vovakirdan/star-collector/internal/platform/tui"
	"github.com/vovakirdan/star-collector/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Star Collector",
	Long: `Start playing. The variant defaults to "collector".

Controls:
  Left/A, Right/D   - Run
  Up/W/Space        - Jump
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Screenshot to ~/.collector/screenshots
  Q/Ctrl+C          - Quit
  Mouse             - Click the ◀ ▶ ▲ Ⅱ buttons in the bottom row

Variants:
  collector         - One fixed physics step per frame, every touching critter costs a life
  collector_smooth  - Frame-rate independent physics, at most one hit per frame

Difficulty options:
  easy   - Critters start at base speed and speed up with each level
  normal - Start at 30% of the extra speed
  hard   - Start at 70% of the extra speed
  fixed  - No progression, stays at config's initial level

Examples:
  collector play
  collector play collector_smooth
  collector play --difficulty hard
  collector play --config ./my-collector.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := collector.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'collector list' to see available variants", gameID)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), gameOptions(cfg, logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
