// collector is a terminal platformer: run, jump, collect every star and keep
// away from the critters patrolling the ground.
//
// Usage:
//
//	collector list               - List available variants
//	collector play [variant]     - Play (default: collector)
//	collector menu               - Pick a variant interactively
//	collector serve              - Start SSH server for remote play
//	collector config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-collector/internal/config"
	"github.com/vovakirdan/star-collector/internal/games/collector"
	"github.com/vovakirdan/star-collector/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collector",
	Short: "Star Collector - a tiny platformer in your terminal",
	Long: `Star Collector is a single-screen platformer for the terminal.

Run and jump along the ground, collect every star to clear the level and
avoid the critters. Each level adds a star, every second level adds a critter.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  collector play
  collector play collector_smooth --difficulty hard
  collector play --seed 42 --log-file collector.log --log-level debug
  collector serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while playing)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the configuration, applies the difficulty preset and
// hands the result to the game package.
func loadGameConfig() (config.CollectorConfig, error) {
	cfg, err := config.LoadCollector(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	collector.SetConfig(cfg)
	return cfg, nil
}

// gameOptions builds the loop driver options from the loaded config.
func gameOptions(cfg config.CollectorConfig, logger *log.Logger) tui.Options {
	return tui.Options{
		Hold:             tui.HoldTimesFromConfig(cfg.Input),
		ReferenceFrameMS: cfg.Physics.ReferenceFrameMS,
		Logger:           logger,
	}
}

// newLogger creates the logger for local play. Bubble Tea owns the terminal,
// so logs go to --log-file or nowhere. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "collector",
	})
	return logger, closeFn, nil
}
