package tui

import (
	"time"

	"github.com/vovakirdan/star-collector/internal/config"
	"github.com/vovakirdan/star-collector/internal/core"
)

// Control identifies one held control of the player.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlJump
	controlCount
)

// HoldTimes configures how long a key press keeps a control held.
type HoldTimes struct {
	Initial time.Duration // First press, covers the terminal auto-repeat delay
	Repeat  time.Duration // Each auto-repeat extends the hold by this much
	Jump    time.Duration
}

// HoldTimesFromConfig converts the input section of the configuration.
func HoldTimesFromConfig(c config.InputConfig) HoldTimes {
	return HoldTimes{
		Initial: time.Duration(c.InitialHoldMS) * time.Millisecond,
		Repeat:  time.Duration(c.RepeatHoldMS) * time.Millisecond,
		Jump:    time.Duration(c.JumpHoldMS) * time.Millisecond,
	}
}

// InputAdapter turns key presses and pointer press/release into a ControlState.
//
// Terminals report presses and auto-repeats but never releases, so a key keeps
// its control held until a deadline passes. Pointer buttons report both edges
// and are held exactly between press and release.
type InputAdapter struct {
	hold    HoldTimes
	now     func() time.Time
	until   [controlCount]time.Time
	pointer [controlCount]bool
}

// NewInputAdapter creates an adapter. A nil clock uses time.Now.
func NewInputAdapter(hold HoldTimes, now func() time.Time) *InputAdapter {
	if now == nil {
		now = time.Now
	}
	return &InputAdapter{hold: hold, now: now}
}

// Press records a key press or auto-repeat for c.
func (a *InputAdapter) Press(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	t := a.now()

	switch c {
	case ControlJump:
		a.extend(c, t.Add(a.hold.Jump))
		return
	case ControlLeft:
		a.release(ControlRight)
	case ControlRight:
		a.release(ControlLeft)
	}

	if t.Before(a.until[c]) {
		a.extend(c, t.Add(a.hold.Repeat))
	} else {
		a.until[c] = t.Add(a.hold.Initial)
	}
}

// PointerDown holds c until PointerUp.
func (a *InputAdapter) PointerDown(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	switch c {
	case ControlLeft:
		a.release(ControlRight)
	case ControlRight:
		a.release(ControlLeft)
	}
	a.pointer[c] = true
}

// PointerUp releases every pointer-held control. Terminals report a release
// without saying which button it belongs to.
func (a *InputAdapter) PointerUp() {
	for i := range a.pointer {
		a.pointer[i] = false
	}
}

// Reset makes every control neutral.
func (a *InputAdapter) Reset() {
	for i := range a.until {
		a.until[i] = time.Time{}
		a.pointer[i] = false
	}
}

// Held reports whether c is currently held by a key or the pointer.
func (a *InputAdapter) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return a.pointer[c] || a.now().Before(a.until[c])
}

// Sample returns the control state for this frame.
func (a *InputAdapter) Sample() core.ControlState {
	return core.ControlState{
		MoveLeft:      a.Held(ControlLeft),
		MoveRight:     a.Held(ControlRight),
		JumpRequested: a.Held(ControlJump),
	}
}

func (a *InputAdapter) extend(c Control, deadline time.Time) {
	if deadline.After(a.until[c]) {
		a.until[c] = deadline
	}
}

func (a *InputAdapter) release(c Control) {
	a.until[c] = time.Time{}
	a.pointer[c] = false
}
