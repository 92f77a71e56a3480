package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Tile colours, as ANSI 256 palette indices.
const (
	ColorGreen    = "28"
	ColorYellow   = "178"
	ColorGray     = "240"
	ColorQuery    = "61"
	ColorWhite    = "255"
	ColorRed      = "196"
	ColorDarkGray = "245"
)

// Styles holds the styles used by Writer.
type Styles struct {
	// Tiles for signature and pattern symbols.
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Gray   lipgloss.Style
	Query  lipgloss.Style

	Header  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns coloured styles bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	tile := func(bg string) lipgloss.Style {
		return r.NewStyle().Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(bg))
	}
	return Styles{
		Green:  tile(ColorGreen),
		Yellow: tile(ColorYellow),
		Gray:   tile(ColorGray),
		Query:  tile(ColorQuery),

		Header:  r.NewStyle().Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   r.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Dim:     r.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}
