package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twocars/internal/core"
	"github.com/vovakirdan/twocars/internal/game"
)

// Model is the Bubble Tea model driving the game loop. The simulation
// itself is pure; the model owns the clock, the input throttle and the
// screen buffer.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     *KeyMapper
	config   core.RuntimeConfig
	now      func() int64
	pending  core.Event // at most one event per frame; first wins
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		config: cfg,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
	g.Reset(cfg, m.now())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit keys short-circuit; everything
// else becomes the frame's pending event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		// Persist the highscore on orderly exit
		//nolint:errcheck // Best-effort save
		m.game.SaveHighscore()
		return m, tea.Quit
	}

	m.queue(core.Event{Action: action})
	return m, nil
}

// handleMouse turns a left press into a click event with logical
// playfield coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	v := viewport{w: m.screen.Width(), h: m.screen.Height()}
	m.queue(core.Event{
		Action: core.ActionClick,
		X:      v.logicalX(msg.X),
		Y:      v.logicalY(msg.Y),
	})
	return m, nil
}

// queue stores the event if the current frame has none yet. Later input
// within the same frame is dropped, not deferred.
func (m *Model) queue(ev core.Event) {
	if m.pending.Action == core.ActionNone {
		m.pending = ev
	}
}

// handleResize adjusts the screen buffer; the simulation is unaffected
// because it runs in logical coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.now(), m.pending)
	m.pending = core.NoEvent
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	model := NewModel(g, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for the death screen buttons
	)

	_, err := p.Run()
	return err
}
