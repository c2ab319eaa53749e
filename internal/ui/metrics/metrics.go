// Package metrics renders the aggregate performance panel shown above the board.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/ui/board"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// Render renders the metrics panel for m over count tasks
func Render(m domain.Metrics, count int, s *styles.Styles, width int) string {
	panel := s.Metrics.Width(max(width-2, 0))
	if count == 0 {
		return panel.Render(s.MetricsEmpty.Render("No tasks yet. Press n to add one."))
	}

	cells := []string{
		cell("Tasks", strconv.Itoa(count), s),
		cell("Revenue", board.FormatMoney(m.TotalRevenue), s),
		cell("Hours", board.FormatHours(m.TotalTimeTaken), s),
		cell("Rev/h", board.FormatMoney(m.RevenuePerHour), s),
		cell("Efficiency", fmt.Sprintf("%.1f%%", m.TimeEfficiencyPct), s),
		cell("Avg ROI", board.FormatMoney(m.AverageROI)+"/h", s),
		s.MetricLabel.Render("Grade ") + s.Grade(m.Grade).Render(string(m.Grade)),
	}

	sep := s.Separator.Render("  │  ")
	var row []string
	for i, c := range cells {
		if i > 0 {
			row = append(row, sep)
		}
		row = append(row, c)
	}
	return panel.Render(lipgloss.JoinHorizontal(lipgloss.Center, row...))
}

func cell(label, value string, s *styles.Styles) string {
	return s.MetricLabel.Render(label+" ") + s.MetricValue.Render(value)
}
