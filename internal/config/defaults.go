package config

import (
	_ "embed"
)

//go:embed defaults/twocars.yaml
var defaultYAML []byte

// Default returns the default tuning configuration.
func Default() Config {
	return Config{
		Cars: CarsConfig{
			MoveDurationMs: 200,
			TiltDegrees:    15,
		},
		Obstacles: ObstaclesConfig{
			SpawnInterval: 80,
			FallSpeed:     6,
			StackGap:      10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			RampPeriodS:  30,
			SpawnStep:    20,
			SpawnFloor:   20,
			SpeedStep:    2,
			SpeedCeiling: 15,
		},
	}
}
