// Package tui implements the Bubble Tea grid editor for gridmark.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#504945"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemePalette returns the named palette, falling back to the default theme.
func ThemePalette(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes[DefaultTheme]
}

// Styles holds the rendered lipgloss styles for one palette.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	IndexCell  lipgloss.Style
	Cursor     lipgloss.Style
	EditCursor lipgloss.Style
	StatusBar  lipgloss.Style
	StatusInfo lipgloss.Style
	StatusWarn lipgloss.Style
	StatusErr  lipgloss.Style
	HelpText   lipgloss.Style
	Divider    lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(p.Foreground).Background(p.Surface),
		Cell:       lipgloss.NewStyle().Foreground(p.Foreground),
		IndexCell:  lipgloss.NewStyle().Foreground(p.Muted),
		Cursor:     lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Primary).Bold(true),
		EditCursor: lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Success).Bold(true),
		StatusBar:  lipgloss.NewStyle().Foreground(p.Muted),
		StatusInfo: lipgloss.NewStyle().Foreground(p.Success),
		StatusWarn: lipgloss.NewStyle().Foreground(p.Warning),
		StatusErr:  lipgloss.NewStyle().Foreground(p.Error),
		HelpText:   lipgloss.NewStyle().Foreground(p.Muted),
		Divider:    lipgloss.NewStyle().Foreground(p.Surface),
	}
}
