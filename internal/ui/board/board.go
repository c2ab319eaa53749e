package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// Render renders the entire kanban board, one column per status.
// The result is at most width cells wide and height lines tall.
func Render(columns []Column, cursor Cursor, s *styles.Styles, width int, height int) string {
	if len(columns) == 0 {
		return ""
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, columnWidth, height, s)

		// Pad short columns to the full slot; nothing here may wrap
		sized := lipgloss.NewStyle().Width(columnWidth).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
