package client

import (
	"strconv"

	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

func renderNotes(notes []models.NoteDTO) string {
	if len(notes) == 0 {
		return emptyStyle.Render("no notes")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TEXT", "PRIORITY", "TAG", "USER").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, n := range notes {
		t.Row(
			strconv.FormatInt(n.ID, 10),
			n.Text,
			n.Priority.String(),
			string(n.Tag),
			strconv.FormatInt(n.UserID, 10),
		)
	}

	return t.String()
}
