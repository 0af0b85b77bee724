package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-collector/internal/core"
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("24"))
	hudValueStyle = hudStyle.Bold(true).Foreground(lipgloss.Color("220"))
	hudAlertStyle = hudStyle.Bold(true).Foreground(lipgloss.Color("203"))
)

// hudStats formats score, lives and level as plain text.
func hudStats(state core.GameState) string {
	return fmt.Sprintf(" Score %d  Lives %d  Level %d", state.Score, state.Lives, state.Level)
}

// renderHUD draws the single status row: stats on the left, a status message
// or the key help on the right. The row is padded or cut to width.
func renderHUD(state core.GameState, status, helpView string, width int) string {
	if width <= 0 {
		return ""
	}

	lives := hudValueStyle
	if state.Lives <= 1 {
		lives = hudAlertStyle
	}
	left := hudStyle.Render(" Score ") + hudValueStyle.Render(fmt.Sprint(state.Score)) +
		hudStyle.Render("  Lives ") + lives.Render(fmt.Sprint(state.Lives)) +
		hudStyle.Render("  Level ") + hudValueStyle.Render(fmt.Sprint(state.Level))

	right := status
	if right == "" {
		right = helpView
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if right == "" || gap < 2 {
		return hudStyle.Width(width).MaxWidth(width).Render(left)
	}
	row := left + hudStyle.Render(strings.Repeat(" ", gap)) + hudStyle.Render(right+" ")
	return hudStyle.MaxWidth(width).Render(row)
}
