// Package config provides YAML-based tuning configuration and difficulty
// presets for the game.
package config

// Config contains all tuning parameters for a round.
type Config struct {
	Cars       CarsConfig       `yaml:"cars"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CarsConfig defines car animation parameters.
type CarsConfig struct {
	MoveDurationMs int64   `yaml:"move_duration_ms"` // Lane change tween length
	TiltDegrees    float64 `yaml:"tilt_degrees"`     // Peak wobble angle during a lane change
}

// ObstaclesConfig defines spawn and movement parameters.
type ObstaclesConfig struct {
	SpawnInterval int `yaml:"spawn_interval"` // Frames between spawn events at round start
	FallSpeed     int `yaml:"fall_speed"`     // Units per frame at round start
	StackGap      int `yaml:"stack_gap"`      // Extra vertical gap beyond car height between stacked spawns
}

// DifficultyConfig defines the time-driven difficulty ramp.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`
	RampPeriodS  int  `yaml:"ramp_period_s"` // Seconds of round time between adjustments
	SpawnStep    int  `yaml:"spawn_step"`    // Spawn interval decrease per adjustment
	SpawnFloor   int  `yaml:"spawn_floor"`   // Minimum spawn interval
	SpeedStep    int  `yaml:"speed_step"`    // Fall speed increase per adjustment
	SpeedCeiling int  `yaml:"speed_ceiling"` // Maximum fall speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset mutates the config for a named preset. Easy and hard stretch
// or shrink the ramp period; fixed disables the ramp entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampPeriodS = 45
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampPeriodS = 30
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampPeriodS = 15
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
