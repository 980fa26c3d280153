package tui

import (
	"fmt"

	"github.com/vovakirdan/twocars/internal/core"
	"github.com/vovakirdan/twocars/internal/game"
)

// viewport maps the fixed logical playfield onto the terminal's cell
// grid. All game coordinates are logical; only the platform scales.
type viewport struct {
	w, h int // terminal cells
}

func (v viewport) cellX(lx int) int {
	return lx * v.w / game.ViewW
}

func (v viewport) cellY(ly int) int {
	return ly * v.h / game.ViewH
}

// logicalX converts a terminal column back to logical coordinates, for
// mouse clicks. The click maps to the cell's center so a click on a
// drawn sprite lands inside its logical rectangle despite truncation.
func (v viewport) logicalX(cx int) int {
	if v.w == 0 {
		return 0
	}
	return (cx*game.ViewW + game.ViewW/2) / v.w
}

func (v viewport) logicalY(cy int) int {
	if v.h == 0 {
		return 0
	}
	return (cy*game.ViewH + game.ViewH/2) / v.h
}

// cellRect scales a logical rectangle to cells, keeping it at least one
// cell in each dimension so small sprites stay visible.
func (v viewport) cellRect(r core.Rect) core.Rect {
	x := v.cellX(r.X)
	y := v.cellY(r.Y)
	w := v.cellX(r.X+r.W) - x
	h := v.cellY(r.Y+r.H) - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return core.NewRect(x, y, w, h)
}

// DrawSnapshot renders a game snapshot onto the screen buffer.
func DrawSnapshot(s *core.Screen, snap game.Snapshot) {
	s.Clear()
	v := viewport{w: s.Width(), h: s.Height()}

	switch snap.Mode {
	case game.ModeMenu:
		drawMenu(s, v, snap)
	case game.ModePlaying:
		drawRound(s, v, snap)
	case game.ModeDeath:
		drawRound(s, v, snap)
		drawDeathOverlay(s, v, snap)
	}
}

func drawMenu(s *core.Screen, v viewport, snap game.Snapshot) {
	drawLanes(s, v)

	titleY := s.Height() / 3
	s.DrawTextCentered(titleY, "T W O   C A R S")
	s.DrawTextCentered(titleY+2, fmt.Sprintf("highscore %d", snap.Highscore))

	prompt := "press any key to play"
	// The prompt slides sideways a few cells to show the menu is alive
	x := core.Clamp((s.Width()-len(prompt))/2+snap.MenuPromptOffset/2, 0, s.Width()-len(prompt))
	s.DrawTextColored(x, titleY+5, prompt, core.ColorYellow)

	s.DrawTextColored(1, s.Height()-1, "a/d steer  q quit", core.ColorGray)
}

func drawRound(s *core.Screen, v viewport, snap game.Snapshot) {
	drawLanes(s, v)

	for _, o := range snap.Obstacles {
		drawObstacle(s, v, o)
	}
	drawCar(s, v, snap.Blue, core.ColorBlue)
	drawCar(s, v, snap.Red, core.ColorRed)

	s.DrawTextColored(1, 0, fmt.Sprintf("score %d", snap.Score), core.ColorWhite)
	hi := fmt.Sprintf("best %d", snap.Highscore)
	s.DrawTextColored(s.Width()-len(hi)-1, 0, hi, core.ColorGray)
}

// drawLanes draws the three lane dividers. The center divider separates
// the blue half from the red half.
func drawLanes(s *core.Screen, v viewport) {
	for i := 1; i < 4; i++ {
		x := v.cellX(i * game.LaneWidth)
		c := core.ColorGray
		if i == 2 {
			c = core.ColorWhite
		}
		s.DrawVLine(x, 0, s.Height(), '│', c)
	}
}

func drawCar(s *core.Screen, v viewport, c game.CarView, color core.Color) {
	body := '█'
	// Lean the sprite while the lane-change tilt is active
	if c.Angle > 1 {
		body = '▓'
	}
	r := v.cellRect(core.NewRect(c.X, c.Y, c.W, c.H))
	s.DrawRect(r, body, color)
}

func drawObstacle(s *core.Screen, v viewport, o game.ObstacleView) {
	glyph := '■'
	if o.Kind.IsCircle() {
		glyph = '●'
	}
	color := core.ColorBrightRed
	if !o.Kind.IsRed() {
		color = core.ColorBrightBlue
	}
	r := v.cellRect(core.NewRect(o.X, o.Y, o.Size, o.Size))
	s.DrawRect(r, glyph, color)
}

func drawDeathOverlay(s *core.Screen, v viewport, snap game.Snapshot) {
	w := s.Width()
	boxW := 30
	if boxW > w-2 {
		boxW = w - 2
	}
	box := core.NewRect((w-boxW)/2, s.Height()/2-4, boxW, 3)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, fmt.Sprintf("game over  score %d", snap.Score))

	drawButton(s, v, game.RestartButton, "[ restart (r) ]")
	drawButton(s, v, game.HomeButton, "[ menu (h) ]")
}

// drawButton renders a clickable label centered in the scaled rectangle
// the simulation uses for hit testing.
func drawButton(s *core.Screen, v viewport, r core.Rect, label string) {
	cr := v.cellRect(r)
	x := cr.X + (cr.W-len(label))/2
	y := cr.Y + cr.H/2
	s.DrawTextColored(x, y, label, core.ColorYellow)
}
