package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

func frameStyle(r *lipgloss.Renderer, b lipgloss.Border) lipgloss.Style {
	return r.NewStyle().Border(b).Padding(0, 1)
}

// Panel frames lines with the theme border. Widths are terminal cells, so
// wide and styled text lines up.
func (p *Painter) Panel(lines []string) string {
	return frameStyle(p.r, p.theme.Border).Render(strings.Join(lines, "\n"))
}
