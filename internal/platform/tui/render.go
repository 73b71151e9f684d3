package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Brick tiers, paddle and text use the classic breakout palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrickStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("#00BCFF")),
	core.ColorBrickMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BFF4A")),
	core.ColorBrickWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1B91")),
	core.ColorPaddle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#AB47BC")),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("#00FB73")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
