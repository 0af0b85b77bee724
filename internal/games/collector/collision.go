package collector

import (
	"github.com/vovakirdan/star-collector/internal/core"
)

// PickupDistance is the center distance under which the player collects s.
func (w *World) PickupDistance(s Star) float64 {
	p := w.Player
	return s.R + max(p.W, p.H)/2 - w.cfg.Stars.PickupSlack
}

// collectStars marks stars within pickup distance and scores them.
func collectStars(w *World, events []core.Event) []core.Event {
	center := w.Player.Center()
	for i := range w.Stars {
		s := &w.Stars[i]
		if s.Collected {
			continue
		}
		if core.Dist(center, s.Center()) < w.PickupDistance(*s) {
			s.Collected = true
			w.Session.Score += w.cfg.Stars.Points
			events = append(events, w.event(core.EventStarCollected))
		}
	}
	return events
}

// hitEnemies applies damage for every enemy overlapping the player.
// Each overlap costs a life unless enemies.hit_debounce limits it to one per step.
func hitEnemies(w *World, events []core.Event) []core.Event {
	c := w.cfg.Enemies
	for _, e := range w.Enemies {
		if !w.Player.Box().Overlaps(e.Box(), c.YTolerance) {
			continue
		}

		w.Player.VY = c.BounceVelocity
		w.Player.Y -= c.BounceLift

		// Lives floor at zero
		if w.Session.Lives > 0 {
			w.Session.Lives--
			events = append(events, w.event(core.EventLifeLost))
		}
		if w.Session.Lives == 0 && !w.Session.GameOver {
			w.Session.GameOver = true
			events = append(events, w.event(core.EventGameOver))
		}

		if c.HitDebounce {
			break
		}
	}
	return events
}
