package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// styleCache maps hex colors to lipgloss styles.
type styleCache map[string]lipgloss.Style

func (c styleCache) get(col colorful.Color) lipgloss.Style {
	hex := col.Clamped().Hex()
	if style, ok := c[hex]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	c[hex] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Fg

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if strings.TrimSpace(run.String()) == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
