package collector

import (
	"time"

	"github.com/vovakirdan/star-collector/internal/config"
	"github.com/vovakirdan/star-collector/internal/core"
	"github.com/vovakirdan/star-collector/internal/registry"
)

// Variant IDs registered with the registry.
const (
	IDClassic = "collector"
	IDSmooth  = "collector_smooth"
)

// gameConfig is the configuration set via CLI before games are created.
var gameConfig *config.CollectorConfig

// SetConfig sets the configuration used by games created afterwards.
// Without it each game loads the config from the default search path.
func SetConfig(cfg config.CollectorConfig) {
	gameConfig = &cfg
}

// Variant tweaks the loaded configuration for a registered game.
type Variant struct {
	ID    string
	Title string
	Tune  func(cfg *config.CollectorConfig)
}

// Game adapts the World, Generator and Renderer to the platform's Game interface.
type Game struct {
	variant  Variant
	runtime  core.RuntimeConfig
	cfg      config.CollectorConfig
	world    *World
	gen      *Generator
	renderer *Renderer
	now      func() time.Time
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v, now: time.Now}
}

// NewClassic creates the faithful variant: one fixed physics step per frame
// and every overlapping enemy costs a life.
func NewClassic() *Game {
	return New(Variant{ID: IDClassic, Title: "Star Collector"})
}

// NewSmooth creates the frame-rate independent variant with one hit per step.
func NewSmooth() *Game {
	return New(Variant{
		ID:    IDSmooth,
		Title: "Star Collector (smooth)",
		Tune: func(cfg *config.CollectorConfig) {
			cfg.Physics.ScaleByDT = true
			cfg.Enemies.HitDebounce = true
		},
	})
}

// SetClock replaces the wall clock used for decorative animation.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	if g.renderer != nil {
		g.renderer.now = now
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the configuration and starts a new run at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.CollectorConfig
	if gameConfig != nil {
		cfg = *gameConfig
	} else {
		loaded, err := config.LoadCollector("")
		if err != nil {
			loaded = config.DefaultCollectorConfig()
		}
		cfg = loaded
	}
	if g.variant.Tune != nil {
		g.variant.Tune(&cfg)
	}
	g.cfg = cfg

	width, height := g.surfaceSize(runtime)
	g.world = NewWorld(cfg, width, height)
	g.gen = NewSeededGenerator(runtime.Seed, cfg)
	g.renderer = NewRenderer(cfg.Surface.CellWidth, cfg.Surface.CellHeight, g.now)
	g.gen.Restart(g.world)
}

// surfaceSize converts the playfield in cells to logical units.
func (g *Game) surfaceSize(runtime core.RuntimeConfig) (float64, float64) {
	return float64(runtime.ScreenW) * g.cfg.Surface.CellWidth,
		float64(runtime.ScreenH) * g.cfg.Surface.CellHeight
}

// Resize reflows the surface without restarting the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	if g.world == nil {
		return
	}
	g.world.Resize(g.surfaceSize(g.runtime))
}

// Suspend pauses the game when the host loses visibility.
func (g *Game) Suspend() {
	if g.world != nil {
		g.world.Session.Paused = true
	}
}

// TogglePause flips the pause flag. It has no effect after game over.
func (g *Game) TogglePause() {
	if g.world == nil || g.world.Session.GameOver {
		return
	}
	g.world.Session.Paused = !g.world.Session.Paused
}

// Restart starts a new run at level 1 with fresh stars and enemies.
func (g *Game) Restart() {
	g.gen.Restart(g.world)
}

// Step handles commands, then advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	events := Update(g.world, g.gen, in.Control, in.DT)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, g.world)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Register the variants with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
	registry.Register(IDSmooth, func() registry.Game {
		return NewSmooth()
	})
}
