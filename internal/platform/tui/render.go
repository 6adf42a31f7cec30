package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorRed; c.Code() != ""; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Code()))
	}
	return styles
}()

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
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// restartLabel is the text of the restart affordance.
const restartLabel = "[ Restart ]"

// overlayRect returns the screen rectangle of the restart affordance:
// a box centered on the playfield.
func overlayRect(s *core.Screen) core.Rect {
	w := len([]rune(restartLabel)) + 4
	h := 5
	return core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
}

// drawOverlay draws the restart affordance into s.
func drawOverlay(s *core.Screen) {
	r := overlayRect(s)
	s.FillRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorBrightWhite)
	s.DrawTextColored(r.X+2, r.Y+1, centerIn("GAME OVER", r.W-4), core.ColorBrightRed)
	s.DrawTextColored(r.X+2, r.Y+3, restartLabel, core.ColorBrightYellow)
}

func centerIn(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
