package config

import "math"

// DifficultyManager turns the current game level into an enemy speed factor.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a game level (1-based).
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	// Only per-level progression is implemented
	if d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(gameLevel-1)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeedFactor returns the multiplier applied to sampled enemy speeds.
// With initial_level 0 and progression disabled it is exactly 1.
func (d *DifficultyManager) EnemySpeedFactor(gameLevel int) float64 {
	return 1.0 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
