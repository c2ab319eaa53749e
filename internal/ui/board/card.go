package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// cardHeight is the rendered height of one card, including border and margin
const cardHeight = 7

// renderCard renders a task card
func renderCard(task domain.DerivedTask, isCursor bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	// Account for padding (2) and border (2)
	inner := max(width-4, 4)

	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	titleLine := s.TaskTitle.Render(ansi.Truncate(cursor+task.Title, inner, "…"))

	priorityBadge := s.PriorityBadge(task.Priority).Render(task.Priority.String())
	rank := s.Rank.Render("#" + strconv.Itoa(task.Rank))
	badgeLine := lipgloss.JoinHorizontal(lipgloss.Left, priorityBadge, " ", rank)

	meta := fmt.Sprintf("%s · %sh · %s/h", FormatMoney(task.Revenue), FormatHours(task.TimeTaken), FormatMoney(task.ROI))
	metaLine := s.TaskMeta.Render(ansi.Truncate(meta, inner, "…"))

	notes := ""
	if task.Notes != "" {
		notes = firstLine(task.Notes)
	}
	notesLine := s.TaskNotes.Render(ansi.Truncate(notes, inner, "…"))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine, metaLine, notesLine)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.DerivedTask, isCursor bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, width, s)
}

// FormatMoney renders an amount with a dollar sign, thousands separators and cents
// only when they are non-zero ("$1,250", "$83.33")
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	cents := int64(v*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if frac != 0 {
		return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
	}
	return sign + "$" + b.String()
}

// FormatHours renders hours without trailing zeros ("2", "0.5", "1.25")
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
