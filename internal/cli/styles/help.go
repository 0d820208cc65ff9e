package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	sep := lipgloss.NewStyle().Foreground(theme.Border)

	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = sep
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.Normal
	h.Styles.FullSeparator = sep
	h.Styles.Ellipsis = sep
	return h
}

// PopupKeyMap defines keybindings for the popup.
type PopupKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Decrease       key.Binding
	Increase       key.Binding
	Reset          key.Binding
	ToggleContrast key.Binding
	ToggleZoom     key.Binding
	ToggleReadable key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.Reset},
		{k.ToggleContrast, k.ToggleZoom, k.ToggleReadable},
		{k.Help, k.Quit},
	}
}

// DefaultPopupKeyMap returns the default popup keybindings.
func DefaultPopupKeyMap() PopupKeyMap {
	return PopupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "less"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "more"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0", "backspace"),
			key.WithHelp("0", "reset row"),
		),
		ToggleContrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle contrast"),
		),
		ToggleZoom: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle zoom"),
		),
		ToggleReadable: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "readable font"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "close"),
		),
	}
}
