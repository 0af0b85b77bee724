// Package config provides YAML-based game configuration loading and
// difficulty management for Star Collector.
package config

// CollectorConfig contains all tunables for the Star Collector game.
type CollectorConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Stars      StarsConfig      `yaml:"stars"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Session    SessionConfig    `yaml:"session"`
	Surface    SurfaceConfig    `yaml:"surface"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the integration parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // Added to vy per reference frame
	ScaleByDT        bool    `yaml:"scale_by_dt"`        // Multiply integration by dt
	ReferenceFrameMS float64 `yaml:"reference_frame_ms"` // Duration of one reference frame
}

// PlayerConfig defines the player's size, start position and movement.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartYRatio float64 `yaml:"start_y_ratio"` // Fraction of surface height
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
}

// StarsConfig defines the star sampling rectangle and scoring.
type StarsConfig struct {
	BaseCount     int     `yaml:"base_count"` // Stars per level = base_count + level
	MinX          float64 `yaml:"min_x"`
	RightMargin   float64 `yaml:"right_margin"`
	MinY          float64 `yaml:"min_y"`
	CeilingMargin float64 `yaml:"ceiling_margin"` // Max y = groundY - ceiling_margin
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	Points        int     `yaml:"points"`
	PickupSlack   float64 `yaml:"pickup_slack"` // Subtracted from the pickup distance
}

// EnemiesConfig defines enemy spawning, patrol and hit behaviour.
type EnemiesConfig struct {
	BaseCount      int     `yaml:"base_count"` // Enemies = base_count + level/per_levels
	PerLevels      int     `yaml:"per_levels"`
	MinX           float64 `yaml:"min_x"`
	RightMargin    float64 `yaml:"right_margin"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	BounceMargin   float64 `yaml:"bounce_margin"`
	YTolerance     float64 `yaml:"y_tolerance"`
	BounceVelocity float64 `yaml:"bounce_velocity"`
	BounceLift     float64 `yaml:"bounce_lift"`
	HitDebounce    bool    `yaml:"hit_debounce"` // At most one hit per step
}

// SessionConfig defines per-run session values.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// SurfaceConfig maps terminal cells to logical units.
type SurfaceConfig struct {
	GroundRatio float64 `yaml:"ground_ratio"`
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
}

// InputConfig defines how long key presses are held on terminals
// that never report key releases.
type InputConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"`
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`
	JumpHoldMS    int `yaml:"jump_hold_ms"`
}

// DifficultyConfig defines the enemy speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Game level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset.
// Unknown or empty values return "" which keeps the config's own settings.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
