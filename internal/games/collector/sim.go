package collector

import (
	"github.com/vovakirdan/star-collector/internal/core"
)

// maxDT caps the elapsed-time multiplier in dt-scaled mode so a long stall
// (suspended terminal, slow SSH link) cannot tunnel entities through each other.
const maxDT = 3.0

// Update advances the world by one frame.
//
// dt is elapsed wall time in reference frames. With physics.scale_by_dt off
// (the default) it is accepted but ignored: every call integrates exactly one
// reference frame. Update is a no-op while the game is paused or over.
func Update(w *World, gen *Generator, ctrl core.ControlState, dt float64) []core.Event {
	if w.Session.GameOver || w.Session.Paused {
		return nil
	}

	cfg := w.cfg
	step := 1.0
	if cfg.Physics.ScaleByDT {
		step = core.ClampF(dt, 0, maxDT)
	}

	p := &w.Player

	// Horizontal intent: instantaneous velocity, no acceleration
	p.VX = ctrl.Horizontal() * p.Speed

	// Gravity integration
	p.VY += cfg.Physics.Gravity * step
	p.X += p.VX * step
	p.Y += p.VY * step

	// Ground collision
	groundY := w.GroundY()
	if p.Y+p.H/2 >= groundY {
		p.Y = groundY - p.H/2
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}

	// Jump, once per grounded contact
	if ctrl.JumpRequested && p.Grounded {
		p.VY = p.Jump
		p.Grounded = false
	}

	w.clampPlayerX()

	moveEnemies(w, step)

	var events []core.Event
	events = collectStars(w, events)
	events = hitEnemies(w, events)
	events = completeLevel(w, gen, events)
	return events
}

// moveEnemies patrols each enemy and flips its heading outside the bounce band.
func moveEnemies(w *World, step float64) {
	margin := w.cfg.Enemies.BounceMargin
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.X += e.Dir * e.Speed * step
		if e.X < margin || e.X > w.Width-margin {
			e.Dir = -e.Dir
		}
	}
}

// completeLevel advances the level once every star is collected.
func completeLevel(w *World, gen *Generator, events []core.Event) []core.Event {
	if w.RemainingStars() > 0 {
		return events
	}
	w.Session.Level++
	gen.Populate(w)
	return append(events, w.event(core.EventLevelUp))
}
