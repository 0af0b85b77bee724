package collector

import (
	"math/rand"

	"github.com/vovakirdan/star-collector/internal/config"
)

// Generator places stars and enemies for a level.
// All sampling goes through the injected RNG, so a fixed seed gives a fixed layout.
type Generator struct {
	rng        *rand.Rand
	cfg        config.CollectorConfig
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.CollectorConfig) *Generator {
	return &Generator{
		rng:        rng,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewSeededGenerator creates a generator with its own RNG seeded with seed.
func NewSeededGenerator(seed int64, cfg config.CollectorConfig) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), cfg)
}

// uniform samples [lo, hi). A degenerate range (hi <= lo) collapses to lo.
func (g *Generator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// StarBounds returns the sampling rectangle for star centers on a surface.
func (g *Generator) StarBounds(width, height float64) (minX, maxX, minY, maxY float64) {
	c := g.cfg.Stars
	minX = c.MinX
	maxX = max(width-c.RightMargin, minX)
	minY = c.MinY
	maxY = max(height*g.cfg.Surface.GroundRatio-c.CeilingMargin, minY)
	return minX, maxX, minY, maxY
}

// SpawnStars returns n uncollected stars inside the star sampling rectangle.
func (g *Generator) SpawnStars(n int, width, height float64) []Star {
	if n < 0 {
		n = 0
	}
	minX, maxX, minY, maxY := g.StarBounds(width, height)

	stars := make([]Star, 0, n)
	for i := 0; i < n; i++ {
		stars = append(stars, Star{
			X: g.uniform(minX, maxX),
			Y: g.uniform(minY, maxY),
			R: g.uniform(g.cfg.Stars.MinRadius, g.cfg.Stars.MaxRadius),
		})
	}
	return stars
}

// EnemyBounds returns the sampling range for enemy x positions.
func (g *Generator) EnemyBounds(width float64) (minX, maxX float64) {
	c := g.cfg.Enemies
	minX = c.MinX
	maxX = max(width-c.RightMargin, minX)
	return minX, maxX
}

// SpawnEnemies returns n enemies resting just above the ground plane with a
// random heading. level scales speed through the difficulty manager.
func (g *Generator) SpawnEnemies(n int, width, height float64, level int) []Enemy {
	if n < 0 {
		n = 0
	}
	c := g.cfg.Enemies
	minX, maxX := g.EnemyBounds(width)
	groundY := height * g.cfg.Surface.GroundRatio
	factor := g.difficulty.EnemySpeedFactor(level)

	enemies := make([]Enemy, 0, n)
	for i := 0; i < n; i++ {
		x := g.uniform(minX, maxX)
		dir := -1.0
		if g.rng.Float64() > 0.5 {
			dir = 1
		}
		speed := g.uniform(c.MinSpeed, c.MaxSpeed) * factor
		enemies = append(enemies, Enemy{
			X:     x,
			Y:     groundY - c.Height,
			W:     c.Width,
			H:     c.Height,
			Dir:   dir,
			Speed: speed,
		})
	}
	return enemies
}

// StarCount returns how many stars a level has.
func (g *Generator) StarCount(level int) int {
	return g.cfg.Stars.BaseCount + level
}

// EnemyCount returns how many enemies a level has.
func (g *Generator) EnemyCount(level int) int {
	return g.cfg.Enemies.BaseCount + level/g.cfg.Enemies.PerLevels
}

// Populate regenerates stars and enemies for the world's current level.
// Score, lives and the player are untouched.
func (g *Generator) Populate(w *World) {
	level := w.Session.Level
	w.Stars = g.SpawnStars(g.StarCount(level), w.Width, w.Height)
	w.Enemies = g.SpawnEnemies(g.EnemyCount(level), w.Width, w.Height, level)
}

// ResetLevel starts the current level over: score and lives reset, the
// player returns to the start position and the level is repopulated.
// The level number itself is kept (raised to 1 if below).
func (g *Generator) ResetLevel(w *World) {
	s := &w.Session
	s.Score = 0
	if s.Level < 1 {
		s.Level = 1
	}
	g.Populate(w)

	p := &w.Player
	p.X = g.cfg.Player.StartX
	p.Y = w.Height * g.cfg.Player.StartYRatio
	p.VX, p.VY = 0, 0
	p.Grounded = false
	w.clampPlayerX()

	s.Lives = g.cfg.Session.Lives
	s.GameOver = false
	s.Paused = false
}

// Restart begins a new run at level 1.
func (g *Generator) Restart(w *World) {
	w.Session.Level = 1
	g.ResetLevel(w)
}
