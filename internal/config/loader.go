package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name searched for in the config directories.
const ConfigFileName = "collector.yaml"

// LoadCollector loads the Star Collector configuration.
// Search order: customPath -> ~/.collector/configs/collector.yaml ->
// ./configs/collector.yaml -> embedded default -> hard-coded default.
// Files only need to contain the keys they override.
func LoadCollector(customPath string) (CollectorConfig, error) {
	// Custom path must work; the user asked for it explicitly
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCollectorConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultCollectorConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultCollectorYAML); err == nil {
		return cfg, nil
	}
	return DefaultCollectorConfig(), nil
}

// parse overlays YAML onto the hard-coded defaults and validates the result.
func parse(data []byte) (CollectorConfig, error) {
	cfg := DefaultCollectorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values that would make the simulation degenerate.
func (c CollectorConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player width and height must be positive"))
	}
	if c.Surface.CellWidth <= 0 || c.Surface.CellHeight <= 0 {
		errs = append(errs, errors.New("surface cell_width and cell_height must be positive"))
	}
	if c.Surface.GroundRatio <= 0 || c.Surface.GroundRatio > 1 {
		errs = append(errs, fmt.Errorf("surface ground_ratio %v must be in (0, 1]", c.Surface.GroundRatio))
	}
	if c.Session.Lives < 1 {
		errs = append(errs, fmt.Errorf("session lives %d must be at least 1", c.Session.Lives))
	}
	if c.Stars.BaseCount < 0 || c.Enemies.BaseCount < 0 {
		errs = append(errs, errors.New("star and enemy base counts must not be negative"))
	}
	if c.Enemies.PerLevels < 1 {
		errs = append(errs, fmt.Errorf("enemies per_levels %d must be at least 1", c.Enemies.PerLevels))
	}
	if c.Physics.ReferenceFrameMS <= 0 {
		errs = append(errs, errors.New("physics reference_frame_ms must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".collector", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the config as loaded.
func ApplyPreset(cfg *CollectorConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "level"
		}
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
