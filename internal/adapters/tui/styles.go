package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	buttonStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 2).Reverse(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Columns of the item table, in display order.
var columns = []string{"id", "title", "description"}

// RenderView draws the list part of a view: the item table, or the empty or
// error message in its place. The notice of a failed create is not included.
func RenderView(v ports.View) string {
	switch v.State {
	case ports.ViewTable:
		return renderTable(v)
	case ports.ViewError:
		return errorStyle.Render(v.Message)
	case ports.ViewLoading:
		return mutedStyle.Render("Loading…")
	default:
		return mutedStyle.Render(v.Message)
	}
}

func renderTable(v ports.View) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(columns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, it := range v.Items {
		t.Row(strconv.FormatInt(it.ID, 10), it.Title, it.Description)
	}
	return t.String()
}
