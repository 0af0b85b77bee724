package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-collector/internal/core"
)

// Palette background colors shared by several styles
const (
	skyBG    = lipgloss.Color("117")
	groundBG = lipgloss.Color("94")
	dimBG    = lipgloss.Color("238")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorSky:          lipgloss.NewStyle().Background(skyBG),
	core.ColorCloud:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(skyBG),
	core.ColorHill:         lipgloss.NewStyle().Foreground(lipgloss.Color("71")).Background(lipgloss.Color("114")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Background(groundBG),
	core.ColorGrass:        lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(groundBG),
	core.ColorStar:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(skyBG).Bold(true),
	core.ColorStarGlow:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(skyBG),
	core.ColorEnemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(skyBG),
	core.ColorEnemyEye:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("203")),
	core.ColorPlayer:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(skyBG),
	core.ColorPlayerEye:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")),
	core.ColorBackpack:     lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Background(skyBG),
	core.ColorShadow:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(skyBG),
	core.ColorOverlay:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(dimBG),
	core.ColorText:         lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("236")).Bold(true),
	core.ColorButton:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
	core.ColorButtonActive: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Bold(true),
}

// styleFor returns the style for c, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
