package game

// CarView is a render-ready view of one car.
type CarView struct {
	X, Y, W, H int
	Angle      float64
}

// ObstacleView is a render-ready view of one obstacle.
type ObstacleView struct {
	Kind Kind
	X, Y int
	Size int
}

// Snapshot is an immutable copy of everything the platform needs to draw a
// frame. All coordinates are in logical viewport units.
type Snapshot struct {
	Mode      Mode
	Score     int
	Highscore int

	Blue, Red CarView
	Obstacles []ObstacleView

	SpawnInterval int
	FallSpeed     int

	// MenuPromptOffset is the sideways bounce of the menu prompt.
	MenuPromptOffset int
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:             g.mode,
		Score:            g.score,
		Highscore:        g.highscore,
		Blue:             carView(&g.blue),
		Red:              carView(&g.red),
		SpawnInterval:    g.spawnInterval,
		FallSpeed:        g.fallSpeed,
		MenuPromptOffset: g.menuOffset,
	}

	snap.Obstacles = make([]ObstacleView, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Kind: o.Kind,
			X:    o.X,
			Y:    o.Y,
			Size: ObstacleSize,
		})
	}
	return snap
}

func carView(c *Car) CarView {
	return CarView{X: c.X, Y: CarY, W: CarWidth, H: CarHeight, Angle: c.Angle}
}
