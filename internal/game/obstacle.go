package game

import "github.com/vovakirdan/twocars/internal/core"

// Kind identifies an obstacle variant. Boxes are lethal to the
// matching-color car; circles score when touched and are lethal if they
// fall past the bottom uncollected.
type Kind int

const (
	RedBox Kind = iota
	RedCircle
	BlueBox
	BlueCircle
)

// IsBox reports whether the kind is a lethal box.
func (k Kind) IsBox() bool {
	return k == RedBox || k == BlueBox
}

// IsCircle reports whether the kind is a collectible circle.
func (k Kind) IsCircle() bool {
	return k == RedCircle || k == BlueCircle
}

// IsRed reports whether the kind belongs to the red lane pair.
func (k Kind) IsRed() bool {
	return k == RedBox || k == RedCircle
}

func (k Kind) String() string {
	switch k {
	case RedBox:
		return "red-box"
	case RedCircle:
		return "red-circle"
	case BlueBox:
		return "blue-box"
	case BlueCircle:
		return "blue-circle"
	default:
		return "unknown"
	}
}

// Obstacle is a passive falling entity fixed to one lane.
type Obstacle struct {
	Kind      Kind
	X, Y      int
	Collected bool
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, ObstacleSize, ObstacleSize)
}
