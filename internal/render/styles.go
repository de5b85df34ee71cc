// Package render handles terminal presentation: lipgloss styles for grid
// output and a textual progress bar for the brute-force solvers.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles bundles the lipgloss styles applied to grid glyphs.
type Styles struct {
	// Loop is the foreground for tiles on the discovered loop.
	Loop lipgloss.Style
	// Ground is the foreground for everything off the loop.
	Ground lipgloss.Style
	// Start additionally carries a background so the start tile stands out.
	Start lipgloss.Style
}

// DefaultStyles returns the standard grid color scheme.
func DefaultStyles() Styles {
	return Styles{
		Loop:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Ground: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Start:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Background(lipgloss.Color("161")),
	}
}

// ApplyColorMode configures the global color profile from a config color
// value. "auto" leaves lipgloss's terminal detection alone.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
