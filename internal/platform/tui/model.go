package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-collector/internal/core"
	"github.com/vovakirdan/star-collector/internal/registry"
)

// Rows reserved around the playfield: the HUD on top, the buttons at the bottom.
const (
	hudRows    = 1
	buttonRows = 1
)

// statusDuration is how long a status message replaces the help line.
const statusDuration = 2 * time.Second

// Options configures a Model beyond the runtime config.
type Options struct {
	// Hold configures the key hold deadlines of the input adapter.
	Hold HoldTimes

	// ReferenceFrameMS is the duration of one reference frame for dt.
	ReferenceFrameMS float64

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes. Empty uses ~/.collector/screenshots.
	ScreenshotDir string

	// Now is the clock for hold deadlines and status messages. Nil uses time.Now.
	Now func() time.Time
}

// clockSetter is implemented by games whose rendering reads the wall clock.
type clockSetter interface {
	SetClock(now func() time.Time)
}

// Model is the Bubble Tea model running one game: the loop driver.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	buttonRow  *core.Screen
	config     core.RuntimeConfig // Whole terminal size
	opts       Options
	input      *InputAdapter
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	status     string
	statusAt   time.Time
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if c, ok := game.(clockSetter); ok {
		c.SetClock(opts.Now)
	}

	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		input:      NewInputAdapter(opts.Hold, opts.Now),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     logger.With("game", game.ID()),
	}
	pf := m.playfield()
	m.screen = core.NewScreen(pf.ScreenW, pf.ScreenH)
	m.buttonRow = core.NewScreen(cfg.ScreenW, buttonRows)
	return m
}

// playfield returns the runtime config for the rows left to the game.
func (m Model) playfield() core.RuntimeConfig {
	pf := m.config
	pf.ScreenW = max(pf.ScreenW, 0)
	pf.ScreenH = max(pf.ScreenH-hudRows-buttonRows, 1)
	return pf
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.playfield())
	m.logger.Info("game started", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)
	// gameState is set on the first tick (value receiver)
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

	case tea.BlurMsg:
		// Lost visibility: nothing stays held and the run pauses
		released := !m.input.Sample().Neutral()
		m.input.Reset()
		m.game.Suspend()
		m.gameState = m.game.State()
		m.logger.Debug("focus lost, game suspended", "released_controls", released)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.setStatus("saved " + filepath.Base(path))
		}
		return m, nil
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
		return m, nil
	}

	if ctrl, ok := controlFor(action); ok {
		m.input.Press(ctrl)
	}
	return m, nil
}

// handleMouse maps clicks on the button row to held controls.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.input.PointerUp()
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != m.buttonRowY() {
			return m, nil
		}
		b, ok := ButtonAt(LayoutButtons(m.config.ScreenW), msg.X)
		if !ok {
			return m, nil
		}
		if b.Holds() {
			m.input.PointerDown(b.Control)
		} else {
			m.inputFrame.Set(b.Action)
		}
	}
	return m, nil
}

// buttonRowY is the terminal row of the on-screen buttons.
// When the view is taller than the terminal the top lines scroll off, so the
// buttons stay on the last row.
func (m Model) buttonRowY() int {
	return core.Clamp(hudRows+m.screen.Height(), 0, max(m.config.ScreenH-1, 0))
}

// handleResize reflows the playfield without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	pf := m.playfield()
	m.screen.Resize(pf.ScreenW, pf.ScreenH)
	m.buttonRow.Resize(max(msg.Width, 0), buttonRows)
	m.game.Resize(pf)

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick samples input and steps the simulation once.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Control = m.input.Sample()
	m.inputFrame.DT = frameDT(m.lastTick, now, m.opts.ReferenceFrameMS)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes the step's events to the logger.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		kv := []any{"score", e.Score, "lives", e.Lives, "level", e.Level}
		if e.Kind == core.EventStarCollected {
			m.logger.Debug(e.Kind.String(), kv...)
			continue
		}
		m.logger.Info(e.Kind.String(), kv...)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = m.opts.Now()
}

// currentStatus returns the status message while it is fresh.
func (m Model) currentStatus() string {
	if m.status == "" || m.opts.Now().Sub(m.statusAt) > statusDuration {
		return ""
	}
	return m.status
}

// saveScreenshot writes the playfield as plain text and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".collector", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := hudStats(m.game.State()) + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the HUD, the playfield and the button row.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	buttons := LayoutButtons(m.config.ScreenW)
	drawButtons(m.buttonRow, buttons, func(b Button) bool {
		return b.Holds() && m.input.Held(b.Control)
	})

	// Leave room for the stats on the left of the HUD
	m.help.Width = max(m.config.ScreenW-lipgloss.Width(hudStats(m.game.State()))-4, 0)

	var b strings.Builder
	b.WriteString(renderHUD(m.game.State(), m.currentStatus(), m.help.View(m.keys), m.config.ScreenW))
	b.WriteByte('\n')
	b.WriteString(RenderScreen(m.screen))
	b.WriteByte('\n')
	b.WriteString(RenderScreen(m.buttonRow))
	return b.String()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press and release for the button row
		tea.WithReportFocus(),     // BlurMsg suspends the game
	)

	_, err := p.Run()
	return err
}

// IsQuitting returns true if the user asked to leave the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}
