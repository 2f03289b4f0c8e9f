package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Options configures the terminal front end.
type Options struct {
	TickRate   int           // Frames per second
	HoldWindow time.Duration // See KeyState
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	keys     KeyMap
	keyState *KeyState
	help     help.Model
	logger   *log.Logger

	tickRate int
	start    time.Time
	last     time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model around a game whose renderer draws
// into screen.
func NewModel(game *breakout.Game, screen *core.Screen, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		game:     game,
		screen:   screen,
		keys:     DefaultKeyMap(),
		keyState: NewKeyState(opts.HoldWindow),
		help:     help.New(),
		logger:   opts.Logger,
		tickRate: opts.TickRate,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Init()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.logger.Info("quit requested", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k, ok := m.keys.GameKey(msg); ok {
		m.keyState.Press(k, now)
	}
	return m, nil
}

// handleResize processes window resize events. One line is kept for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-m.helpHeight(), 1))
	return m, nil
}

// handleTick runs one frame: input, then simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}
	dt := frameTime(m.last, now)
	m.last = now

	m.keyState.Apply(&m.game.Keys, now)
	m.game.ProcessInput(dt)
	m.game.Update(dt)

	return m, tickCmd(m.tickRate)
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	elapsed := 0.0
	if !m.start.IsZero() {
		elapsed = m.last.Sub(m.start).Seconds()
	}
	m.game.Render(elapsed)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a game built by newGame, which
// receives the renderer and sound player to create the game with.
func Run(cfg core.RuntimeConfig, world mgl64.Vec2, opts Options, newGame func(breakout.Renderer, breakout.SoundPlayer) (*breakout.Game, error)) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.TickRate
	}

	renderer := NewScreenRenderer(core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)), world)
	game, err := newGame(renderer, NewLogSound(opts.Logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, renderer.Screen(), opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
