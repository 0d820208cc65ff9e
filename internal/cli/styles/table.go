package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/readably/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SettingsTableColumns returns columns for the stored settings table.
func SettingsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Key", Width: 14},
		{Title: "Value", Width: 8},
		{Title: "Element", Width: 16},
	}
}

// SettingsRows converts a settings record to table rows in restore order.
func SettingsRows(s entity.Settings) []table.Row {
	rows := make([]table.Row, 0, len(entity.RestoreOrder))
	for _, d := range entity.RestoreOrder {
		value := strconv.Itoa(s.Value(d))
		if d == entity.DimensionReadableFont {
			value = strconv.FormatBool(s.ReadableFont)
		}
		rows = append(rows, table.Row{d.Key(), value, d.ElementID()})
	}
	return rows
}

// InteractionTableColumns returns columns for the interaction log table.
func InteractionTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "When", Width: 17},
		{Title: "Zoom +", Width: 7},
		{Title: "Zoom -", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "C/F/Z/S/A/R", Width: 16},
	}
}

// InteractionRow converts an interaction to a table row.
func InteractionRow(in *entity.Interaction) table.Row {
	s := in.Settings
	readable := "0"
	if s.ReadableFont {
		readable = "1"
	}
	summary := strconv.Itoa(s.Contrast) + "/" + strconv.Itoa(s.Font) + "/" + strconv.Itoa(s.Zoom) + "/" +
		strconv.Itoa(s.Spacing) + "/" + strconv.Itoa(s.Align) + "/" + readable

	return table.Row{
		strconv.FormatInt(in.ID, 10),
		in.CreatedAt.Local().Format("2006-01-02 15:04"),
		strconv.Itoa(in.ZoomInCount),
		strconv.Itoa(in.ZoomOutCount),
		in.TimeOnPage.Round(time.Second).String(),
		summary,
	}
}
