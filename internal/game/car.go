package game

import (
	"math"

	"github.com/vovakirdan/twocars/internal/core"
)

// Pair identifies which lane pair a car owns.
type Pair int

const (
	PairBlue Pair = iota // lanes 0 and 1
	PairRed              // lanes 2 and 3
)

// Car is a lane-locked player entity. It never moves vertically; steering
// toggles it between its pair's two lanes with a short tween and a wobble.
type Car struct {
	Pair    Pair
	X       int // Current horizontal position
	TargetX int // Destination of the current tween
	Moving  bool
	Angle   float64 // Current tilt in degrees

	moveStart    int64 // Timestamps in clock milliseconds
	tilting      bool
	tiltStart    int64
	moveDuration int64
	tiltPeak     float64
}

// NewCar creates a car parked on its home lane.
func NewCar(pair Pair, moveDurationMs int64, tiltDegrees float64) Car {
	c := Car{Pair: pair, moveDuration: moveDurationMs, tiltPeak: tiltDegrees}
	c.Park()
	return c
}

// homeX returns the lane the car starts a round on: blue on the outermost
// left lane, red on the outermost right.
func (c *Car) homeX() int {
	if c.Pair == PairBlue {
		return LaneX[0]
	}
	return LaneX[3]
}

// Park snaps the car back to its home lane and clears any animation.
func (c *Car) Park() {
	c.X = c.homeX()
	c.TargetX = c.X
	c.Moving = false
	c.Angle = 0
	c.tilting = false
}

// Steer toggles the car between its two lanes and starts the tween and the
// wobble. A request mid-transition overwrites the target and restarts both
// timers; there is no queuing.
func (c *Car) Steer(now int64) {
	if c.Pair == PairBlue {
		if c.X == LaneX[0] {
			c.TargetX = LaneX[1]
		} else {
			c.TargetX = LaneX[0]
		}
	} else {
		if c.X == LaneX[3] {
			c.TargetX = LaneX[2]
		} else {
			c.TargetX = LaneX[3]
		}
	}
	c.Moving = true
	c.moveStart = now
	c.tilting = true
	c.tiltStart = now
}

// Advance progresses both animations to the given clock reading.
//
// The horizontal step intentionally interpolates from the car's current,
// already-partially-moved position rather than the tween's origin. Each
// frame moves a fraction of the remaining distance, so the motion eases
// out instead of being linear. Truncation toward zero matches the source
// behavior exactly; the snap at the end guarantees arrival.
func (c *Car) Advance(now int64) {
	if c.tilting {
		elapsed := now - c.tiltStart
		if elapsed < c.moveDuration {
			c.Angle = c.tiltPeak * math.Sin(math.Pi/float64(c.moveDuration)*float64(elapsed))
		} else {
			c.Angle = 0
			c.tilting = false
		}
	}

	if c.Moving {
		elapsed := now - c.moveStart
		if elapsed < c.moveDuration {
			t := float64(elapsed) / float64(c.moveDuration)
			c.X += int(t * float64(c.TargetX-c.X))
		} else {
			c.X = c.TargetX
			c.Moving = false
		}
	}
}

// Rect returns the car's collision rectangle.
func (c *Car) Rect() core.Rect {
	return core.NewRect(c.X, CarY, CarWidth, CarHeight)
}
