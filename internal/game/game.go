package game

import (
	"time"

	"github.com/vovakirdan/twocars/internal/config"
	"github.com/vovakirdan/twocars/internal/core"
)

// Mode is the screen the game is currently on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDeath
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Cue is a sound event emitted by a step. The platform may play it or
// ignore it; the simulation never blocks on audio.
type Cue int

const (
	CuePickup Cue = iota
	CueDeath
	CueMiss
)

// HighscoreStore persists the single best score across runs.
type HighscoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RoundRecorder records finished rounds for the scoreboard. Optional.
type RoundRecorder interface {
	SaveRound(score int, duration time.Duration) (int64, error)
}

// StepResult is returned by Step. Cues is usually empty.
type StepResult struct {
	Cues []Cue
}

// Menu prompt bounce tuning.
const (
	menuBounceRange = 10
	menuBounceSpeed = 1
)

// Game owns the whole simulation: both cars, the live obstacle set, the
// spawner, the difficulty ramp and the menu/play/death state machine. It
// is single-threaded; the platform calls Step once per frame with a clock
// reading in milliseconds and at most one input event.
type Game struct {
	cfg config.Config

	mode      Mode
	blue, red Car
	obstacles []Obstacle
	spawner   *Spawner
	ramp      Ramp

	score         int
	spawnInterval int
	fallSpeed     int
	roundStart    int64

	highscore int
	hsStore   HighscoreStore
	rounds    RoundRecorder

	menuOffset int
	menuDir    int
}

// New creates a game with the given tuning and stores. Either store may be
// nil; the game then keeps the highscore in memory only.
func New(cfg config.Config, hs HighscoreStore, rounds RoundRecorder) *Game {
	return &Game{cfg: cfg, hsStore: hs, rounds: rounds}
}

// Reset initializes the game into the main menu. A missing or unreadable
// highscore is treated as zero, never as an error.
func (g *Game) Reset(rt core.RuntimeConfig, now int64) {
	g.blue = NewCar(PairBlue, g.cfg.Cars.MoveDurationMs, g.cfg.Cars.TiltDegrees)
	g.red = NewCar(PairRed, g.cfg.Cars.MoveDurationMs, g.cfg.Cars.TiltDegrees)
	g.spawner = NewSpawner(rt.Seed, g.cfg.Obstacles.StackGap)
	g.ramp = NewRamp(g.cfg.Difficulty)

	g.highscore = 0
	if g.hsStore != nil {
		if hs, err := g.hsStore.Load(); err == nil {
			g.highscore = hs
		}
	}

	g.mode = ModeMenu
	g.menuOffset = 0
	g.menuDir = 1
	g.resetRound(now)
}

// resetRound restores the fixed round baseline: score, obstacle set,
// spawn interval, fall speed, car positions and the round clock.
func (g *Game) resetRound(now int64) {
	g.score = 0
	g.obstacles = g.obstacles[:0]
	g.spawnInterval = g.cfg.Obstacles.SpawnInterval
	g.fallSpeed = g.cfg.Obstacles.FallSpeed
	g.roundStart = now
	g.blue.Park()
	g.red.Park()
	g.spawner.Rearm()
	g.ramp.Reset()
}

// Step advances the simulation by one frame.
func (g *Game) Step(now int64, ev core.Event) StepResult {
	g.handleEvent(now, ev)

	var res StepResult
	switch g.mode {
	case ModePlaying:
		res.Cues = g.advanceRound(now)
	case ModeMenu:
		g.advanceMenu()
	}
	return res
}

// handleEvent applies the frame's single input event to the state machine.
// Unrecognized input in a given mode is a no-op.
func (g *Game) handleEvent(now int64, ev core.Event) {
	switch g.mode {
	case ModeMenu:
		if ev.Action != core.ActionNone {
			g.mode = ModePlaying
			g.resetRound(now)
		}

	case ModePlaying:
		switch ev.Action {
		case core.ActionBack:
			g.mode = ModeMenu
			g.resetRound(now)
		case core.ActionSteerBlue:
			g.blue.Steer(now)
		case core.ActionSteerRed:
			g.red.Steer(now)
		}

	case ModeDeath:
		switch {
		case ev.Action == core.ActionRestart,
			ev.Action == core.ActionClick && RestartButton.Contains(ev.X, ev.Y):
			g.mode = ModePlaying
			g.resetRound(now)
		case ev.Action == core.ActionHome,
			ev.Action == core.ActionClick && HomeButton.Contains(ev.X, ev.Y):
			g.mode = ModeMenu
			g.resetRound(now)
		}
	}
}

// advanceRound runs one frame of play: obstacle fall and bottom-exit
// handling, collision and scoring, the difficulty ramp, spawning, then the
// car animations. The order matches the original update loop.
func (g *Game) advanceRound(now int64) []Cue {
	var cues []Cue
	died := false

	// Fall and bottom-exit pass. A circle that leaves the viewport
	// uncollected is a fatal miss; a box is silently discarded.
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Y += g.fallSpeed
		if o.Y > ViewH {
			if o.Kind.IsCircle() && !o.Collected {
				cues = append(cues, CueMiss)
				died = true
			}
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	// Collision pass: each car against every live obstacle.
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if g.red.Rect().Intersects(o.Rect()) {
			switch {
			case o.Kind == RedBox:
				cues = append(cues, CueDeath)
				died = true
			case o.Kind == RedCircle && !o.Collected:
				g.score++
				o.Collected = true
				cues = append(cues, CuePickup)
			}
		}
		if g.blue.Rect().Intersects(o.Rect()) {
			switch {
			case o.Kind == BlueBox:
				cues = append(cues, CueDeath)
				died = true
			case o.Kind == BlueCircle && !o.Collected:
				g.score++
				o.Collected = true
				cues = append(cues, CuePickup)
			}
		}
	}

	// Collected obstacles exist for the frame they resolve in, then vanish.
	kept = g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.Collected {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept

	g.spawnInterval, g.fallSpeed = g.ramp.Tick(now, g.roundStart, g.spawnInterval, g.fallSpeed)
	g.obstacles = g.spawner.Tick(g.obstacles, g.spawnInterval)

	g.blue.Advance(now)
	g.red.Advance(now)

	if died {
		g.die(now)
	}
	return cues
}

// die transitions to the death screen and persists results immediately.
func (g *Game) die(now int64) {
	g.mode = ModeDeath

	if g.score > g.highscore {
		g.highscore = g.score
		if g.hsStore != nil {
			// Best effort; a full disk should not end the session
			_ = g.hsStore.Save(g.highscore)
		}
	}
	if g.rounds != nil {
		duration := time.Duration(now-g.roundStart) * time.Millisecond
		_, _ = g.rounds.SaveRound(g.score, duration)
	}
}

// advanceMenu bounces the "press any key" prompt.
func (g *Game) advanceMenu() {
	g.menuOffset += menuBounceSpeed * g.menuDir
	if g.menuOffset <= -menuBounceRange || g.menuOffset >= menuBounceRange {
		g.menuDir = -g.menuDir
	}
}

// SaveHighscore persists the current highscore. Called by the platform on
// orderly shutdown.
func (g *Game) SaveHighscore() error {
	if g.hsStore == nil {
		return nil
	}
	return g.hsStore.Save(g.highscore)
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// Highscore returns the best score seen, including the current round.
func (g *Game) Highscore() int {
	return g.highscore
}
