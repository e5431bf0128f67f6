package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + panel border.
// Mono leaves every colour unset, so it never needs colour switched off.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	TitleBold                                     bool
	Border                                        lipgloss.Border
	BoxUnchecked, BoxChecked                      string
	SymDone, SymUnchecked                         string
}

// Themes lists the names SetTheme understands.
var Themes = []string{"classic", "neon", "mono"}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: lipgloss.NoColor{}, TitleBold: true,
		Muted: lipgloss.Color("8"), Accent: lipgloss.Color("4"),
		Success: lipgloss.Color("2"), Error: lipgloss.Color("1"), Pending: lipgloss.Color("3"),
		Border:       lipgloss.NormalBorder(),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymUnchecked: "•",
	}
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// SetTheme switches the current theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), TitleBold: true,
			Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("2"), Error: lipgloss.Color("1"), Pending: lipgloss.Color("11"),
			Border:       lipgloss.RoundedBorder(),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymUnchecked: "•",
		}
	case "mono":
		none := lipgloss.NoColor{}
		current = Theme{
			Name:  "mono",
			Title: none, Muted: none, Accent: none,
			Success: none, Error: none, Pending: none,
			Border:       asciiBorder,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymUnchecked: "-",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
