package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// palette maps core colors to ANSI 256 codes. Piece colors follow the usual
// tetromino scheme; orange needs the 256-color range.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "240",
}

// styles is built once from palette; missing entries render unstyled.
var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(palette)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		out[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range s.Height() {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run strings.Builder
	current := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()

	return sb.String()
}
