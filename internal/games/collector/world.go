// Package collector implements Star Collector: a single-screen platformer where
// the player runs and jumps along a flat ground, collects stars and avoids
// patrolling critters. Clearing all stars advances the level.
package collector

import (
	"github.com/vovakirdan/star-collector/internal/config"
	"github.com/vovakirdan/star-collector/internal/core"
)

// Player is the controllable character. Position is the body center.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64 // Full body width and height
	Speed    float64 // Horizontal speed per reference frame
	Jump     float64 // Vertical velocity set on jump (negative = up)
	Grounded bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{Center: core.Vec{X: p.X, Y: p.Y}, HalfW: p.W / 2, HalfH: p.H / 2}
}

// Center returns the player's body center.
func (p Player) Center() core.Vec {
	return core.Vec{X: p.X, Y: p.Y}
}

// Star is a pickup. Collected flips to true once and never reverts.
type Star struct {
	X, Y      float64
	R         float64
	Collected bool
}

// Center returns the star's center.
func (s Star) Center() core.Vec {
	return core.Vec{X: s.X, Y: s.Y}
}

// Enemy is a critter patrolling left and right above the ground.
// Y is the patrol anchor; the body is drawn and tested one half-height above it.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Dir   float64 // +1 or -1
	Speed float64
}

// Box returns the enemy's collision box.
func (e Enemy) Box() core.Box {
	return core.Box{Center: core.Vec{X: e.X, Y: e.Y - e.H/2}, HalfW: e.W / 2, HalfH: e.H / 2}
}

// Session holds the per-run counters shown on the HUD.
type Session struct {
	Score    int
	Lives    int
	Level    int
	Paused   bool
	GameOver bool
}

// World is the aggregate the simulation step mutates and the renderer reads.
// There is one World per running game; nothing here is process-global.
type World struct {
	Player  Player
	Stars   []Star
	Enemies []Enemy
	Session Session

	Width  float64 // Surface width in logical units
	Height float64 // Surface height in logical units

	cfg config.CollectorConfig
}

// NewWorld creates an empty world for a surface of the given logical size.
// Call Generator.Restart to populate it.
func NewWorld(cfg config.CollectorConfig, width, height float64) *World {
	w := &World{cfg: cfg}
	w.Player = Player{
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
		Jump:  cfg.Player.JumpImpulse,
	}
	w.Session.Level = 1
	w.Resize(width, height)
	return w
}

// GroundY returns the y coordinate of the ground plane.
func (w *World) GroundY() float64 {
	return w.Height * w.cfg.Surface.GroundRatio
}

// Resize reflows the logical surface. Stars stay where they are. Enemy anchors
// follow the ground line, a grounded player is re-pinned to it and the player
// is kept inside the horizontal bounds.
func (w *World) Resize(width, height float64) {
	oldGround := w.GroundY()
	w.Width = max(width, 0)
	w.Height = max(height, 0)

	delta := w.GroundY() - oldGround
	for i := range w.Enemies {
		w.Enemies[i].Y += delta
	}
	if w.Player.Grounded {
		w.Player.Y = w.GroundY() - w.Player.H/2
	}
	w.clampPlayerX()
}

// clampPlayerX keeps the player within [w/2, width-w/2].
// On a surface narrower than the player the left bound wins.
func (w *World) clampPlayerX() {
	half := w.Player.W / 2
	if w.Player.X > w.Width-half {
		w.Player.X = w.Width - half
	}
	if w.Player.X < half {
		w.Player.X = half
	}
}

// RemainingStars returns the number of uncollected stars.
func (w *World) RemainingStars() int {
	n := 0
	for _, s := range w.Stars {
		if !s.Collected {
			n++
		}
	}
	return n
}

// State returns the HUD view of the session.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Session.Score,
		Lives:    w.Session.Lives,
		Level:    w.Session.Level,
		GameOver: w.Session.GameOver,
		Paused:   w.Session.Paused,
	}
}

func (w *World) event(kind core.EventKind) core.Event {
	return core.Event{
		Kind:  kind,
		Score: w.Session.Score,
		Lives: w.Session.Lives,
		Level: w.Session.Level,
	}
}
