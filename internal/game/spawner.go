package game

import "math/rand"

// Spawner produces paired obstacles on a countdown. Every expiry emits
// exactly two obstacles in two distinct lanes, then resets the countdown
// to the current spawn interval.
type Spawner struct {
	rng       *rand.Rand
	countdown int
	stackGap  int
}

// NewSpawner creates a spawner with a seeded generator so spawn patterns
// are reproducible.
func NewSpawner(seed int64, stackGap int) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed)), stackGap: stackGap}
}

// Reset reseeds the generator and arms the countdown so the next tick
// spawns immediately.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.countdown = 0
}

// Rearm arms the countdown for a new round without reseeding, so
// consecutive rounds draw fresh patterns from the same stream.
func (s *Spawner) Rearm() {
	s.countdown = 0
}

// Countdown returns the frames remaining until the next spawn event.
func (s *Spawner) Countdown() int {
	return s.countdown
}

// Tick advances the countdown by one frame. When it expires, two new
// obstacles are appended to obstacles and the countdown resets to
// interval. The (possibly grown) slice is returned.
func (s *Spawner) Tick(obstacles []Obstacle, interval int) []Obstacle {
	if s.countdown > 0 {
		s.countdown--
		return obstacles
	}

	// Two distinct lanes per event, chosen by shuffling all four lane
	// indices and taking the first two.
	lanes := [4]int{0, 1, 2, 3}
	s.rng.Shuffle(len(lanes), func(i, j int) {
		lanes[i], lanes[j] = lanes[j], lanes[i]
	})

	var boxUsed, circleUsed [2]bool // indexed 0=red, 1=blue

	for i := 0; i < 2; i++ {
		obstacles = append(obstacles, s.makeObstacle(lanes[i], &boxUsed, &circleUsed, obstacles))
	}

	s.countdown = interval
	return obstacles
}

// makeObstacle builds one obstacle for a shuffled lane index.
//
// Lane indices map to physical lanes inverted: index 0/1 yields a red
// obstacle on physical lane 2/3, index 2/3 a blue obstacle on lane 0/1.
// The inversion is inherited from the lane constants and preserved for
// positional parity.
func (s *Spawner) makeObstacle(lane int, boxUsed, circleUsed *[2]bool, existing []Obstacle) Obstacle {
	var o Obstacle

	color := 0 // red
	if lane == 2 || lane == 3 {
		color = 1 // blue
	}

	// With 50% probability prefer a box, falling back to the circle; if
	// the circle was already taken this event the box is forced. At most
	// one box and one circle per color per event, so a same-color pair is
	// never two boxes - an unavoidable death would otherwise be possible.
	wantBox := s.rng.Intn(2) == 0
	switch {
	case !boxUsed[color] && wantBox:
		o.Kind = boxKind(color)
		boxUsed[color] = true
	case !circleUsed[color]:
		o.Kind = circleKind(color)
		circleUsed[color] = true
	default:
		o.Kind = boxKind(color)
		boxUsed[color] = true
	}

	switch lane {
	case 0:
		o.X = LaneX[2]
	case 1:
		o.X = LaneX[3]
	case 2:
		o.X = LaneX[0]
	case 3:
		o.X = LaneX[1]
	}

	// Spawn fully above the visible area; if the most recently appended
	// obstacle is still near the top, stack this one a car height plus gap
	// higher so there is always room to react.
	o.Y = -ObstacleSize
	if len(existing) > 0 {
		last := existing[len(existing)-1]
		if last.Y < CarHeight+s.stackGap {
			o.Y = last.Y - (CarHeight + s.stackGap)
		}
	}

	return o
}

func boxKind(color int) Kind {
	if color == 0 {
		return RedBox
	}
	return BlueBox
}

func circleKind(color int) Kind {
	if color == 0 {
		return RedCircle
	}
	return BlueCircle
}
