package collector

import (
	"math"
	"time"

	"github.com/vovakirdan/star-collector/internal/core"
)

// Visual characters for rendering
const (
	HillChar     = '░'
	GrassChar    = '▀'
	GroundChar   = '▒'
	CloudChar    = '█'
	StarChar     = '★'
	StarFill     = '*'
	GlowChar     = '·'
	BodyChar     = '█'
	EyeChar      = '●'
	EnemyEyeChar = 'o'
	SmileChar    = '‿'
	BackpackChar = '▌'
	ShadowChar   = '▁'
)

// Renderer paints a World onto a cell screen. It only reads the world.
// Clouds drift with wall-clock time; nothing it draws feeds back into play.
type Renderer struct {
	cellW float64 // Logical units per column
	cellH float64 // Logical units per row
	now   func() time.Time
}

// NewRenderer creates a renderer for the given cell scale.
// A nil clock uses time.Now.
func NewRenderer(cellW, cellH float64, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{cellW: cellW, cellH: cellH, now: now}
}

// col maps a logical x to a column.
func (r *Renderer) col(x float64) int {
	return int(math.Floor(x / r.cellW))
}

// row maps a logical y to a row.
func (r *Renderer) row(y float64) int {
	return int(math.Floor(y / r.cellH))
}

// Render draws the whole scene. The screen is fully overwritten.
func (r *Renderer) Render(dst *core.Screen, w *World) {
	dst.Fill(' ', core.ColorSky)

	r.drawHills(dst, w)
	r.drawGround(dst, w)
	r.drawClouds(dst, w)

	for _, s := range w.Stars {
		if !s.Collected {
			r.drawStar(dst, s)
		}
	}
	for _, e := range w.Enemies {
		r.drawEnemy(dst, e)
	}
	r.drawPlayer(dst, w.Player)

	switch {
	case w.Session.GameOver:
		drawOverlay(dst, "Game Over", "Press R to try again")
	case w.Session.Paused:
		drawOverlay(dst, "Paused", "Press P to resume")
	}
}

// fillEllipse paints every cell whose center lies inside the ellipse.
func (r *Renderer) fillEllipse(dst *core.Screen, cx, cy, rx, ry float64, ch rune, c core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c0, c1 := max(r.col(cx-rx), 0), min(r.col(cx+rx), dst.Width()-1)
	r0, r1 := max(r.row(cy-ry), 0), min(r.row(cy+ry), dst.Height()-1)
	for y := r0; y <= r1; y++ {
		py := (float64(y) + 0.5) * r.cellH
		for x := c0; x <= c1; x++ {
			px := (float64(x) + 0.5) * r.cellW
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				dst.SetCell(x, y, ch, c)
			}
		}
	}
}

// fillBox paints the cells covered by a logical rectangle.
func (r *Renderer) fillBox(dst *core.Screen, x0, y0, x1, y1 float64, ch rune, c core.Color) {
	c0, c1 := r.col(x0), r.col(x1-1e-9)
	r0, r1 := r.row(y0), r.row(y1-1e-9)
	dst.DrawRect(core.NewRect(c0, r0, c1-c0+1, r1-r0+1), ch, c)
}

func (r *Renderer) drawHills(dst *core.Screen, w *World) {
	r.fillEllipse(dst, w.Width*0.2, w.Height*0.9, w.Width*0.6, 140, HillChar, core.ColorHill)
	r.fillEllipse(dst, w.Width*0.8, w.Height*0.94, w.Width*0.5, 120, HillChar, core.ColorHill)
}

func (r *Renderer) drawGround(dst *core.Screen, w *World) {
	top := r.row(w.GroundY())
	if top < 0 {
		top = 0
	}
	dst.DrawHLine(0, top, dst.Width(), GrassChar, core.ColorGrass)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func (r *Renderer) drawClouds(dst *core.Screen, w *World) {
	if w.Width <= 0 {
		return
	}
	drift := math.Mod(float64(r.now().UnixMilli())/60, 900)
	for i := 0; i < 4; i++ {
		cx := float64(i)*220 + drift
		cy := 80 + float64(i%2)*10
		r.fillEllipse(dst, math.Mod(cx, w.Width), cy, 50, 28, CloudChar, core.ColorCloud)
		r.fillEllipse(dst, math.Mod(cx+40, w.Width), 92+float64(i%2)*8, 40, 22, CloudChar, core.ColorCloud)
	}
}

func (r *Renderer) drawStar(dst *core.Screen, s Star) {
	r.fillEllipse(dst, s.X, s.Y, s.R+8, s.R+8, GlowChar, core.ColorStarGlow)
	r.fillEllipse(dst, s.X, s.Y, s.R, s.R, StarFill, core.ColorStar)
	dst.SetCell(r.col(s.X), r.row(s.Y), StarChar, core.ColorStar)
}

func (r *Renderer) drawEnemy(dst *core.Screen, e Enemy) {
	b := e.Box()
	r.fillBox(dst, b.Center.X-b.HalfW, b.Center.Y-b.HalfH, b.Center.X+b.HalfW, b.Center.Y+b.HalfH, BodyChar, core.ColorEnemy)

	eyeRow := r.row(b.Center.Y - 6)
	dst.SetCell(r.col(b.Center.X-8), eyeRow, EnemyEyeChar, core.ColorEnemyEye)
	dst.SetCell(r.col(b.Center.X+8), eyeRow, EnemyEyeChar, core.ColorEnemyEye)
}

func (r *Renderer) drawPlayer(dst *core.Screen, p Player) {
	// Shadow under the feet
	shadowRow := r.row(p.Y + p.H/2 + 6)
	dst.DrawHLine(r.col(p.X-p.W/2), shadowRow, r.col(p.X+p.W/2)-r.col(p.X-p.W/2)+1, ShadowChar, core.ColorShadow)

	r.fillBox(dst, p.X-p.W/2, p.Y-p.H/2, p.X+p.W/2, p.Y+p.H/2, BodyChar, core.ColorPlayer)

	eyeRow := r.row(p.Y - 8)
	dst.SetCell(r.col(p.X-10), eyeRow, EyeChar, core.ColorPlayerEye)
	dst.SetCell(r.col(p.X+10), eyeRow, EyeChar, core.ColorPlayerEye)
	dst.SetCell(r.col(p.X), r.row(p.Y+10), SmileChar, core.ColorPlayerEye)

	// Backpack hangs off the left side
	top := p.Y - p.H/2 + 6
	r.fillBox(dst, p.X-p.W/2-6, top, p.X-p.W/2+10, top+26, BackpackChar, core.ColorBackpack)
}

// drawOverlay dims the scene and draws a centered message box.
func drawOverlay(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	dst.Tint(core.NewRect(0, 0, w, h), core.ColorOverlay)

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorText)
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, title, core.ColorText)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorText)
}
