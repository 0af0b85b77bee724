package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-collector/internal/config"
	"github.com/vovakirdan/star-collector/internal/core"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resets   []core.RuntimeConfig
	resizes  []core.RuntimeConfig
	frames   []core.InputFrame
	suspends int
	clock    func() time.Time
	state    core.GameState
}

func (g *recordingGame) ID() string    { return "recorder" }
func (g *recordingGame) Title() string { return "Recorder" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{Lives: 3, Level: 1}
}

func (g *recordingGame) Resize(cfg core.RuntimeConfig) {
	g.resizes = append(g.resizes, cfg)
}

func (g *recordingGame) Suspend() {
	g.suspends++
	g.state.Paused = true
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses the actions map between frames
	saved := in
	saved.Actions = make(map[core.Action]bool, len(in.Actions))
	for a, v := range in.Actions {
		saved.Actions[a] = v
	}
	g.frames = append(g.frames, saved)

	if in.Has(core.ActionRestart) {
		g.state = core.GameState{Lives: 3, Level: 1}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "field", core.ColorText)
}

func (g *recordingGame) State() core.GameState { return g.state }

func (g *recordingGame) SetClock(now func() time.Time) { g.clock = now }

func (g *recordingGame) lastFrame(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("no frame was stepped")
	}
	return g.frames[len(g.frames)-1]
}

type modelHarness struct {
	t     *testing.T
	game  *recordingGame
	model Model
	clock *fakeClock
}

// newHarness starts a game on a terminal of the given size.
func newHarness(t *testing.T, width, height int) *modelHarness {
	t.Helper()
	cfg := config.DefaultCollectorConfig()

	clock := newFakeClock()
	game := &recordingGame{}

	m := NewModel(game, core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: 60, Seed: 7}, Options{
		Hold:             HoldTimesFromConfig(cfg.Input),
		ReferenceFrameMS: cfg.Physics.ReferenceFrameMS,
		ScreenshotDir:    t.TempDir(),
		Now:              clock.now,
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return &modelHarness{t: t, game: game, model: m, clock: clock}
}

func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.model = m
	return cmd
}

func (h *modelHarness) tick() core.InputFrame {
	h.t.Helper()
	h.clock.advance(16 * time.Millisecond)
	if cmd := h.send(TickMsg(h.clock.now())); cmd == nil {
		h.t.Fatal("tick should schedule the next tick")
	}
	return h.game.lastFrame(h.t)
}

func (h *modelHarness) click(x, y int) {
	h.t.Helper()
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func TestModelInit(t *testing.T) {
	h := newHarness(t, 80, 24)

	if len(h.game.resets) != 1 {
		t.Fatalf("Init should reset once, got %d", len(h.game.resets))
	}
	pf := h.game.resets[0]
	if pf.ScreenW != 80 || pf.ScreenH != 22 || pf.Seed != 7 {
		t.Errorf("playfield = %+v, expected 80x22 with seed 7", pf)
	}
	if h.game.clock == nil {
		t.Fatal("model should hand its clock to the game")
	}
	if !h.game.clock().Equal(h.clock.now()) {
		t.Error("game clock should follow the model clock")
	}
}

func TestModelKeyHold(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if f := h.tick(); !f.Control.MoveRight || f.Control.MoveLeft {
		t.Errorf("right key frame = %+v", f.Control)
	}

	// The key is still held on the next frame, without a repeat
	if f := h.tick(); !f.Control.MoveRight {
		t.Error("held key should stay active")
	}

	// After the hold expires the control is released
	h.clock.advance(time.Second)
	if f := h.tick(); !f.Control.Neutral() {
		t.Errorf("expired hold should be neutral, got %+v", f.Control)
	}

	h.send(runeKey('w'))
	if f := h.tick(); !f.Control.JumpRequested {
		t.Error("w should request a jump")
	}
}

func TestModelFrameDT(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.clock.advance(time.Second)
	h.send(TickMsg(h.clock.now()))
	if f := h.game.lastFrame(t); f.DT != 1 {
		t.Errorf("first frame dt = %f, expected 1", f.DT)
	}

	h.clock.advance(33332 * time.Microsecond)
	h.send(TickMsg(h.clock.now()))
	if f := h.game.lastFrame(t); math.Abs(f.DT-2) > 1e-9 {
		t.Errorf("dt = %f, expected 2", f.DT)
	}
}

func TestModelDiscreteActions(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.send(runeKey('p'))
	if f := h.tick(); !f.Has(core.ActionPause) {
		t.Fatal("p should send a pause action")
	}
	if !h.model.State().Paused {
		t.Error("model should mirror the paused state")
	}

	// Actions last a single frame
	if f := h.tick(); len(f.Actions) != 0 {
		t.Errorf("actions should be cleared, got %v", f.Actions)
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	h.tick()
	if h.model.State().Paused {
		t.Error("esc should resume")
	}

	h.send(runeKey('r'))
	if f := h.tick(); !f.Has(core.ActionRestart) {
		t.Error("r should send a restart action")
	}
}

func TestModelBlurSuspends(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	h.send(tea.BlurMsg{})

	if h.game.suspends != 1 {
		t.Errorf("focus loss should suspend once, got %d", h.game.suspends)
	}
	if !h.model.State().Paused {
		t.Error("model should see the suspended state")
	}
	if !h.model.input.Sample().Neutral() {
		t.Error("focus loss should release every control")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.send(tea.WindowSizeMsg{Width: 40, Height: 14})

	if len(h.game.resets) != 1 {
		t.Error("resize should not restart the run")
	}
	if len(h.game.resizes) != 1 {
		t.Fatalf("expected one resize, got %d", len(h.game.resizes))
	}
	if pf := h.game.resizes[0]; pf.ScreenW != 40 || pf.ScreenH != 12 {
		t.Errorf("resized playfield = %dx%d, expected 40x12", pf.ScreenW, pf.ScreenH)
	}
	if h.model.screen.Width() != 40 || h.model.screen.Height() != 12 {
		t.Errorf("playfield = %dx%d, expected 40x12", h.model.screen.Width(), h.model.screen.Height())
	}
	if h.model.buttonRow.Width() != 40 {
		t.Errorf("button row width = %d, expected 40", h.model.buttonRow.Width())
	}
}

func TestModelMouseButtons(t *testing.T) {
	h := newHarness(t, 80, 24)
	row := 23 // HUD row + 22 playfield rows

	// Press on the right button, held past any key deadline
	h.click(30, row)
	h.clock.advance(5 * time.Second)
	if f := h.tick(); !f.Control.MoveRight {
		t.Error("pointer on the right button should hold right")
	}

	h.send(tea.MouseMsg{X: 30, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !h.model.input.Sample().Neutral() {
		t.Error("release should clear the pointer")
	}

	// Clicks outside the button row are ignored
	h.click(30, 5)
	if !h.model.input.Sample().Neutral() {
		t.Error("click on the playfield should not move")
	}

	h.click(50, row)
	if f := h.tick(); !f.Control.JumpRequested {
		t.Error("jump button should request a jump")
	}
	h.send(tea.MouseMsg{X: 50, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	h.click(70, row)
	if f := h.tick(); !f.Has(core.ActionPause) {
		t.Error("pause button should send a pause action")
	}
}

func TestModelButtonRowOnShortTerminal(t *testing.T) {
	tests := []struct {
		name   string
		height int
		row    int
	}{
		{"two rows", 2, 1},
		{"one row", 1, 0},
		{"three rows", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 80, tt.height)
			if got := h.model.buttonRowY(); got != tt.row {
				t.Fatalf("buttonRowY() = %d, expected %d", got, tt.row)
			}

			h.click(30, tt.row)
			if !h.model.input.Held(ControlRight) {
				t.Error("click on the last row should hit the buttons")
			}

			// Nothing exists below the last row
			h.send(tea.MouseMsg{X: 30, Y: tt.row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
			h.click(30, tt.height)
			if !h.model.input.Sample().Neutral() {
				t.Error("click past the terminal should be ignored")
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t, 80, 24)

	cmd := h.send(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if !h.model.IsQuitting() || h.model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelScreenshot(t *testing.T) {
	h := newHarness(t, 80, 24)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	dir := h.model.opts.ScreenshotDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "recorder_") || filepath.Ext(name) != ".txt" {
		t.Errorf("unexpected screenshot name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != " Score 0  Lives 3  Level 1" {
		t.Errorf("screenshot should start with the stats, got %q", lines[0])
	}
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "field") {
		t.Error("screenshot should contain the playfield")
	}
	if h.model.currentStatus() == "" {
		t.Error("screenshot should set a status message")
	}

	h.clock.advance(3 * time.Second)
	if h.model.currentStatus() != "" {
		t.Error("status should expire")
	}
}

func TestModelView(t *testing.T) {
	h := newHarness(t, 80, 24)
	h.tick()

	view := h.model.View()
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}
	for _, want := range []string{"Score", "Lives", "Level", "field", "◀", "▶", "▲", "Ⅱ"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
