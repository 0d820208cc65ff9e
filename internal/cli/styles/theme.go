// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of base colors a Theme is built from. Colors are hex strings.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Error      string
	Success    string
}

// DarkPalette is the default popup palette.
func DarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#f5f5f5",
		Muted:      "#909090",
		Accent:     "#facc15",
		Border:     "#333333",
		Error:      "#ef4444",
		Success:    "#4ade80",
	}
}

// HighContrastPalette drops the greys so every foreground sits on pure black.
func HighContrastPalette() Palette {
	return Palette{
		Background: "#000000",
		Surface:    "#000000",
		Text:       "#ffffff",
		Muted:      "#ffffff",
		Accent:     "#ffff00",
		Border:     "#ffffff",
		Error:      "#ff6060",
		Success:    "#00ff00",
	}
}

// Theme holds lipgloss colors and styles.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Selection  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	SliderFilled lipgloss.Style
	SliderEmpty  lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	BoxHeader lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DarkPalette())
}

// NewHighContrastTheme creates the theme used once the page itself is in high contrast.
func NewHighContrastTheme() *Theme {
	return NewThemeFromPalette(HighContrastPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Selection:  lipgloss.Color(selectionColor(p)),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(lipgloss.Color(p.Error))
	t.SuccessStyle = fg(lipgloss.Color(p.Success))

	t.ListItem = fg(t.Text).PaddingLeft(2)
	t.ListItemSelected = fg(t.Accent).Background(t.Selection).PaddingLeft(2).Bold(true)

	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.Selection).Padding(0, 1)

	t.SliderFilled = fg(t.Accent)
	t.SliderEmpty = fg(t.Border)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	t.BoxHeader = fg(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	return t
}

// selectionColor lifts the surface a little toward the text color. Invalid hex
// input falls back to the surface itself.
func selectionColor(p Palette) string {
	surface, err := colorful.Hex(p.Surface)
	if err != nil {
		return p.Surface
	}
	text, err := colorful.Hex(p.Text)
	if err != nil {
		return p.Surface
	}
	return surface.BlendLab(text, 0.12).Clamped().Hex()
}
