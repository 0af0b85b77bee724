package config

import (
	_ "embed"
)

//go:embed defaults/collector.yaml
var defaultCollectorYAML []byte

// DefaultCollectorConfig returns the hard-coded default configuration.
// It mirrors defaults/collector.yaml and is the last fallback of the loader.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Physics: PhysicsConfig{
			Gravity:          0.6,
			ScaleByDT:        false,
			ReferenceFrameMS: 16.666,
		},
		Player: PlayerConfig{
			StartX:      80,
			StartYRatio: 0.5,
			Width:       46,
			Height:      58,
			Speed:       3.6,
			JumpImpulse: -12,
		},
		Stars: StarsConfig{
			BaseCount:     5,
			MinX:          120,
			RightMargin:   60,
			MinY:          80,
			CeilingMargin: 120,
			MinRadius:     12,
			MaxRadius:     20,
			Points:        10,
			PickupSlack:   6,
		},
		Enemies: EnemiesConfig{
			BaseCount:      1,
			PerLevels:      2,
			MinX:           300,
			RightMargin:    80,
			Width:          44,
			Height:         36,
			MinSpeed:       1,
			MaxSpeed:       2.6,
			BounceMargin:   40,
			YTolerance:     6,
			BounceVelocity: -8,
			BounceLift:     20,
			HitDebounce:    false,
		},
		Session: SessionConfig{
			Lives: 3,
		},
		Surface: SurfaceConfig{
			GroundRatio: 0.78,
			CellWidth:   10,
			CellHeight:  20,
		},
		Input: InputConfig{
			InitialHoldMS: 550,
			RepeatHoldMS:  120,
			JumpHoldMS:    90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCollectorYAML
}
