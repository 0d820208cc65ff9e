// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/readably/internal/app/messaging"
	"github.com/bnema/readably/internal/cli/styles"
	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/logging"
)

// Dispatcher delivers popup messages to the active page.
type Dispatcher interface {
	Handle(ctx context.Context, msg messaging.Message) (messaging.Response, bool)
	Settings() entity.Settings
}

// PopupOptions holds the slider ranges.
type PopupOptions struct {
	ZoomStep   int
	ZoomMin    int
	ZoomMax    int
	SpacingMax int
	AlignMax   int
}

// DefaultPopupOptions returns the stock slider ranges.
func DefaultPopupOptions() PopupOptions {
	return PopupOptions{
		ZoomStep:   10,
		ZoomMin:    -50,
		ZoomMax:    100,
		SpacingMax: 10,
		AlignMax:   10,
	}
}

// control is one popup row. Slider rows send action with the new value,
// switch rows send action without one.
type control struct {
	label     string
	icon      string
	dimension entity.Dimension
	action    entity.ActionKind
	min, max  int
	step      int
	isSwitch  bool
}

func popupControls(opts PopupOptions) []control {
	step := opts.ZoomStep
	if step <= 0 {
		step = 1
	}
	return []control{
		{label: "High contrast", icon: styles.IconContrast, dimension: entity.DimensionContrast,
			action: entity.ActionSetHighContrast, min: entity.ContrastMin, max: entity.ContrastMax, step: 1},
		{label: "Font", icon: styles.IconFont, dimension: entity.DimensionFont,
			action: entity.ActionSetFont, min: entity.FontNone, max: entity.FontMax, step: 1},
		{label: "Zoom", icon: styles.IconZoom, dimension: entity.DimensionZoom,
			action: entity.ActionSetZoom, min: opts.ZoomMin, max: opts.ZoomMax, step: step},
		{label: "Text spacing", icon: styles.IconSpacing, dimension: entity.DimensionSpacing,
			action: entity.ActionSetSpace, min: 0, max: opts.SpacingMax, step: 1},
		{label: "Line spacing", icon: styles.IconAlign, dimension: entity.DimensionAlign,
			action: entity.ActionSetAlign, min: 0, max: opts.AlignMax, step: 1},
		{label: "Readable font", icon: styles.IconEye, dimension: entity.DimensionReadableFont,
			action: entity.ActionToggleReadableFont, isSwitch: true},
	}
}

// PopupModel is the terminal popup: one row per style dimension.
type PopupModel struct {
	controls []control
	cursor   int
	status   string
	showHelp bool
	width    int

	help help.Model
	keys styles.PopupKeyMap

	ctx        context.Context
	dispatcher Dispatcher
	theme      *styles.Theme

	// contrastTheme replaces theme once the page contrast reaches highContrastLevel.
	contrastTheme *styles.Theme
}

const highContrastLevel = 2

// NewPopupModel creates a popup sending messages through dispatcher.
func NewPopupModel(ctx context.Context, theme *styles.Theme, dispatcher Dispatcher, opts PopupOptions) PopupModel {
	logging.FromContext(ctx).Debug().Msg("creating popup model")

	return PopupModel{
		controls:      popupControls(opts),
		help:          styles.NewStyledHelp(theme),
		keys:          styles.DefaultPopupKeyMap(),
		ctx:           ctx,
		dispatcher:    dispatcher,
		theme:         theme,
		contrastTheme: styles.NewHighContrastTheme(),
		width:         60,
	}
}

// Init implements tea.Model.
func (m PopupModel) Init() tea.Cmd {
	return nil
}

// Status returns the status of the last handled message.
func (m PopupModel) Status() string {
	return m.status
}

// Update implements tea.Model.
func (m PopupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PopupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.controls)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Decrease):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Increase):
		m.nudge(1)
	case key.Matches(msg, m.keys.Reset):
		m.resetRow()
	case key.Matches(msg, m.keys.ToggleContrast):
		m.send(string(entity.ActionToggleHighContrast), nil)
	case key.Matches(msg, m.keys.ToggleZoom):
		m.send(string(entity.ActionToggleZoom), nil)
	case key.Matches(msg, m.keys.ToggleReadable):
		m.send(string(entity.ActionToggleReadableFont), nil)
	}
	return m, nil
}

// nudge moves the selected slider by one step, or flips the selected switch.
func (m *PopupModel) nudge(dir int) {
	c := m.controls[m.cursor]
	if c.isSwitch {
		m.send(string(c.action), nil)
		return
	}

	current := m.dispatcher.Settings().Value(c.dimension)
	next := min(max(current+dir*c.step, c.min), c.max)
	if next == current {
		return
	}
	// Range inputs deliver their value as a string.
	m.send(string(c.action), strconv.Itoa(next))
}

func (m *PopupModel) resetRow() {
	c := m.controls[m.cursor]
	if m.dispatcher.Settings().Value(c.dimension) == 0 {
		return
	}
	if c.isSwitch {
		m.send(string(c.action), nil)
		return
	}
	m.send(string(c.action), "0")
}

func (m *PopupModel) send(action string, value any) {
	log := logging.FromContext(m.ctx)

	msg, err := messaging.NewMessage(action, value)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to build message")
		return
	}

	resp, ok := m.dispatcher.Handle(m.ctx, msg)
	if !ok {
		m.status = ""
		return
	}
	m.status = resp.Status
}

// View implements tea.Model.
func (m PopupModel) View() string {
	s := m.dispatcher.Settings()
	t := m.themeFor(s)

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render("readably"))
	b.WriteString("\n")

	for i, c := range m.controls {
		b.WriteString(renderRow(t, c, s, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := t.Subtle
		if strings.HasPrefix(m.status, "error") {
			style = t.ErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m PopupModel) themeFor(s entity.Settings) *styles.Theme {
	if s.Contrast >= highContrastLevel && m.contrastTheme != nil {
		return m.contrastTheme
	}
	return m.theme
}

func renderRow(t *styles.Theme, c control, s entity.Settings, selected bool) string {
	label := fmt.Sprintf("%s  %-14s", c.icon, c.label)
	var value string
	if c.isSwitch {
		if s.ReadableFont {
			value = t.Badge.Render("on")
		} else {
			value = t.BadgeMuted.Render("off")
		}
	} else {
		v := s.Value(c.dimension)
		value = t.Slider(v, c.min, c.max) + " " + t.Normal.Render(fmt.Sprintf("%4d", v))
	}

	if selected {
		return t.ListItemSelected.Render(label) + " " + value
	}
	return t.ListItem.Render(label) + " " + value
}
