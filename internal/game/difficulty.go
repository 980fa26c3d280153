package game

import "github.com/vovakirdan/twocars/internal/config"

// Ramp mutates round parameters on fixed real-time boundaries: every ramp
// period of round time the spawn interval steps down toward its floor and
// the fall speed steps up toward its ceiling.
type Ramp struct {
	cfg        config.DifficultyConfig
	lastAdjust int64 // Clock milliseconds of the last adjustment
}

// NewRamp creates a ramp with the given tuning.
func NewRamp(cfg config.DifficultyConfig) Ramp {
	return Ramp{cfg: cfg}
}

// Reset clears the adjustment guard for a new round.
func (r *Ramp) Reset() {
	r.lastAdjust = 0
}

// Tick applies at most one adjustment for the current frame. The guard
// timestamp keeps the adjustment from firing more than once per real-time
// second even when many frames land on the same elapsed-second boundary.
// Returns the possibly-updated interval and speed.
func (r *Ramp) Tick(now, roundStart int64, spawnInterval, fallSpeed int) (int, int) {
	if !r.cfg.Enabled || r.cfg.RampPeriodS <= 0 {
		return spawnInterval, fallSpeed
	}

	elapsed := (now - roundStart) / 1000
	if elapsed <= 0 || elapsed%int64(r.cfg.RampPeriodS) != 0 {
		return spawnInterval, fallSpeed
	}
	if now-r.lastAdjust < 1000 {
		return spawnInterval, fallSpeed
	}

	spawnInterval = max(spawnInterval-r.cfg.SpawnStep, r.cfg.SpawnFloor)
	fallSpeed = min(fallSpeed+r.cfg.SpeedStep, r.cfg.SpeedCeiling)
	r.lastAdjust = now

	return spawnInterval, fallSpeed
}
