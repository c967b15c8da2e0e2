package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
