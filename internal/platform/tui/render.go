package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maksdenisov/skystrike/internal/core"
)

// styleFor resolves a cell color to a lipgloss style.
func styleFor(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorRed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case core.ColorGreen:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case core.ColorYellow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case core.ColorBlue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	case core.ColorMagenta:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case core.ColorCyan:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case core.ColorWhite:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	case core.ColorBrightRed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case core.ColorBrightYellow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case core.ColorBrightCyan:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	case core.ColorBrightWhite:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	case core.ColorOrange:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	case core.ColorGray:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	default:
		return lipgloss.NewStyle()
	}
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells sharing a color are grouped into one styled run to keep the
// ANSI escape overhead low.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
