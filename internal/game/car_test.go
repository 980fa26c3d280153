package game

import (
	"math"
	"testing"
)

const frameMs = 16

func TestCarHomeLanes(t *testing.T) {
	blue := NewCar(PairBlue, 200, 15)
	red := NewCar(PairRed, 200, 15)

	if blue.X != LaneX[0] {
		t.Errorf("blue home x = %d, expected %d", blue.X, LaneX[0])
	}
	if red.X != LaneX[3] {
		t.Errorf("red home x = %d, expected %d", red.X, LaneX[3])
	}
}

func TestCarSteerReachesOppositeLane(t *testing.T) {
	tests := []struct {
		name   string
		pair   Pair
		from   int
		target int
	}{
		{"blue outward", PairBlue, LaneX[0], LaneX[1]},
		{"red inward", PairRed, LaneX[3], LaneX[2]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCar(tc.pair, 200, 15)
			if c.X != tc.from {
				t.Fatalf("car not at expected start lane: %d", c.X)
			}

			c.Steer(0)
			if c.TargetX != tc.target {
				t.Fatalf("target = %d, expected %d", c.TargetX, tc.target)
			}

			// Advance well past the tween duration in frame-sized steps
			for now := int64(frameMs); now <= 300; now += frameMs {
				c.Advance(now)
			}

			if c.X != tc.target {
				t.Errorf("final x = %d, expected exactly %d", c.X, tc.target)
			}
			if c.Moving {
				t.Error("motion flag should clear once the tween finishes")
			}
		})
	}
}

func TestCarSteerToggleReturnsHome(t *testing.T) {
	c := NewCar(PairBlue, 200, 15)

	c.Steer(0)
	for now := int64(frameMs); now <= 250; now += frameMs {
		c.Advance(now)
	}
	if c.X != LaneX[1] {
		t.Fatalf("first toggle should land on lane 1, got %d", c.X)
	}

	c.Steer(1000)
	for now := int64(1000 + frameMs); now <= 1250; now += frameMs {
		c.Advance(now)
	}
	if c.X != LaneX[0] {
		t.Errorf("second toggle should return home, got %d", c.X)
	}
}

func TestCarTweenEasesOut(t *testing.T) {
	// The interpolation measures each step against the current position,
	// so the per-frame displacement shrinks as the car nears the target.
	c := NewCar(PairBlue, 200, 15)
	c.Steer(0)

	prev := c.X
	var steps []int
	for now := int64(frameMs); now < 200; now += frameMs {
		c.Advance(now)
		if c.X < prev || c.X > c.TargetX {
			t.Fatalf("motion must be monotonic toward the target, x went %d -> %d", prev, c.X)
		}
		steps = append(steps, c.X-prev)
		prev = c.X
	}

	// More than half the distance should be covered in the first half of
	// the window; a naive lerp from the origin would cover exactly half.
	total := LaneX[1] - LaneX[0]
	covered := 0
	for i, d := range steps {
		if int64(i+1)*frameMs > 100 {
			break
		}
		covered += d
	}
	if covered*2 <= total {
		t.Errorf("ease-out expected: first half covered %d of %d", covered, total)
	}
}

func TestCarSteerMidMoveOverwritesTarget(t *testing.T) {
	c := NewCar(PairBlue, 200, 15)
	c.Steer(0)
	c.Advance(50)

	if c.X == LaneX[0] || c.X == LaneX[1] {
		t.Fatalf("car should be mid-transition, x = %d", c.X)
	}

	// Mid-move the position matches neither lane, so the toggle targets
	// the home lane again
	c.Steer(60)
	if c.TargetX != LaneX[0] {
		t.Errorf("mid-move steer should target the home lane, got %d", c.TargetX)
	}

	for now := int64(60 + frameMs); now <= 320; now += frameMs {
		c.Advance(now)
	}
	if c.X != LaneX[0] {
		t.Errorf("car should settle on the home lane, got %d", c.X)
	}
}

func TestCarTiltFollowsSine(t *testing.T) {
	c := NewCar(PairRed, 200, 15)
	c.Steer(0)

	// Peak at the middle of the window
	c.Advance(100)
	if math.Abs(c.Angle-15) > 1e-9 {
		t.Errorf("angle at half duration = %f, expected 15", c.Angle)
	}

	// Quarter window: 15 * sin(pi/4)
	c2 := NewCar(PairRed, 200, 15)
	c2.Steer(0)
	c2.Advance(50)
	want := 15 * math.Sin(math.Pi/4)
	if math.Abs(c2.Angle-want) > 1e-9 {
		t.Errorf("angle at quarter duration = %f, expected %f", c2.Angle, want)
	}

	// Zero once the window closes
	c.Advance(200)
	if c.Angle != 0 {
		t.Errorf("angle after the window = %f, expected 0", c.Angle)
	}
}

func TestCarPark(t *testing.T) {
	c := NewCar(PairBlue, 200, 15)
	c.Steer(0)
	c.Advance(50)

	c.Park()

	if c.X != LaneX[0] || c.Moving || c.Angle != 0 {
		t.Errorf("Park should restore the home state, got x=%d moving=%v angle=%f", c.X, c.Moving, c.Angle)
	}
}
