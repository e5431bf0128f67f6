package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode is the user's colour preference.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorMode = ColorAuto

// SetColorMode applies to every Painter created afterwards.
func SetColorMode(m ColorMode) { colorMode = m }

// Painter styles text for one writer. In auto mode the colour profile is
// detected from that writer, so stderr keeps colour when stdout is piped.
type Painter struct {
	r     *lipgloss.Renderer
	theme Theme
}

func NewPainter(w io.Writer) *Painter {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	}
	return &Painter{r: r, theme: current}
}

func (p *Painter) Theme() Theme { return p.theme }

// Fg colours s.
func (p *Painter) Fg(c lipgloss.TerminalColor, s string) string {
	return p.r.NewStyle().Foreground(c).Render(s)
}

// Title renders s in the theme's title style.
func (p *Painter) Title(s string) string {
	return p.r.NewStyle().Foreground(p.theme.Title).Bold(p.theme.TitleBold).Render(s)
}

func (p *Painter) Faint(s string) string {
	if p.theme.Name == "mono" {
		return s
	}
	return p.r.NewStyle().Faint(true).Render(s)
}

func OK(w io.Writer, msg string) {
	p := NewPainter(w)
	fmt.Fprintln(w, p.Fg(p.theme.Success, p.theme.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	p := NewPainter(w)
	fmt.Fprintln(w, p.Fg(p.theme.Error, "✖ "+msg))
}
