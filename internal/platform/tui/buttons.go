package tui

import (
	"github.com/vovakirdan/star-collector/internal/core"
)

// Button is an on-screen pointer region in the bottom row.
type Button struct {
	Label   string
	Action  core.Action
	Control Control // Held control; unused for the pause button
	X, W    int     // Column span
}

// Holds reports whether the button drives a held control.
func (b Button) Holds() bool {
	_, ok := controlFor(b.Action)
	return ok
}

var buttonDefs = []struct {
	label  string
	action core.Action
}{
	{"◀", core.ActionLeft},
	{"▶", core.ActionRight},
	{"▲", core.ActionJump},
	{"Ⅱ", core.ActionPause},
}

// LayoutButtons splits a row of the given width into equal button regions.
// The last button absorbs the remainder.
func LayoutButtons(width int) []Button {
	if width <= 0 {
		return nil
	}
	n := len(buttonDefs)
	seg := width / n
	buttons := make([]Button, 0, n)
	x := 0
	for i, def := range buttonDefs {
		w := seg
		if i == n-1 {
			w = width - x
		}
		ctrl, _ := controlFor(def.action)
		buttons = append(buttons, Button{
			Label:   def.label,
			Action:  def.action,
			Control: ctrl,
			X:       x,
			W:       w,
		})
		x += w
	}
	return buttons
}

// ButtonAt returns the button covering column x.
func ButtonAt(buttons []Button, x int) (Button, bool) {
	for _, b := range buttons {
		if b.W > 0 && x >= b.X && x < b.X+b.W {
			return b, true
		}
	}
	return Button{}, false
}

// drawButtons paints the button row onto a one-row screen.
func drawButtons(dst *core.Screen, buttons []Button, held func(Button) bool) {
	dst.Fill(' ', core.ColorButton)
	for _, b := range buttons {
		c := core.ColorButton
		if held(b) {
			c = core.ColorButtonActive
		}
		dst.DrawRect(core.NewRect(b.X, 0, b.W, dst.Height()), ' ', c)
		// Separator between regions
		if b.X > 0 {
			dst.SetCell(b.X, 0, '│', c)
		}
		dst.DrawText(b.X+b.W/2, 0, b.Label, c)
	}
}
