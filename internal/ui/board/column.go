package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// renderColumn renders a kanban column with header and task cards, exactly
// width cells wide and at most height lines tall.
// When the cards do not fit, the window scrolls so the cursor stays visible.
func renderColumn(
	col Column,
	cursorTask int,
	isActive bool,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.StatusHeader(col.Status, isActive)

	// Render header with title and count (e.g., "─ Todo (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	remainingWidth := width - lipgloss.Width(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	// Border takes one row above and one below the cards
	bodyHeight := max(1, height-lipgloss.Height(header)-2)

	// Leave room for the scroll hints
	visible := max(1, (bodyHeight-2)/cardHeight)
	start := 0
	if isActive && cursorTask >= visible {
		start = cursorTask - visible + 1
	}
	end := min(len(col.Tasks), start+visible)

	var cardStrings []string
	cardWidth := width - 6 // column border and padding, then the card's own border
	if start > 0 {
		cardStrings = append(cardStrings, s.StatusHint.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		isCursor := isActive && i == cursorTask
		cardStrings = append(cardStrings, renderCard(col.Tasks[i], isCursor, cardWidth, s))
	}
	if rest := len(col.Tasks) - end; rest > 0 {
		cardStrings = append(cardStrings, s.StatusHint.Render(fmt.Sprintf("↓ %d more", rest)))
	}

	content := strings.Join(cardStrings, "\n")

	// Width and Height exclude the border, so subtract it to keep the column inside its slot
	columnStyle := s.Column.
		Width(width - 2).
		Height(bodyHeight).
		MaxHeight(bodyHeight + 2)
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
