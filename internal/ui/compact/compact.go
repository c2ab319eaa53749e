// Package compact renders the ranked task table, an alternative to the board.
package compact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/ui/board"
)

// CompactView is a scrolling one-row-per-task table
type CompactView struct {
	tasks  []domain.DerivedTask
	cursor int
	styles *Styles
	width  int
	height int

	// Scrolling state
	scrollOffset int
}

// NewCompactView creates a new CompactView with the given tasks and dimensions
func NewCompactView(tasks []domain.DerivedTask, width, height int) *CompactView {
	return &CompactView{
		tasks:  tasks,
		styles: NewStyles(),
		width:  width,
		height: height,
	}
}

// SetCursor sets the cursor position, clamped to the task list
func (cv *CompactView) SetCursor(index int) {
	cv.cursor = Clamp(index, len(cv.tasks))
	cv.ensureCursorVisible()
}

// Cursor returns the current cursor position
func (cv *CompactView) Cursor() int {
	return cv.cursor
}

// Current returns the task at the cursor position
func (cv *CompactView) Current() (domain.DerivedTask, bool) {
	if cv.cursor >= 0 && cv.cursor < len(cv.tasks) {
		return cv.tasks[cv.cursor], true
	}
	return domain.DerivedTask{}, false
}

// Clamp keeps index inside [0, n), or 0 for an empty list
func Clamp(index, n int) int {
	return max(0, min(index, n-1))
}

// IndexOf returns the row of the task with id, or -1
func IndexOf(tasks []domain.DerivedTask, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Render renders the full compact view
func (cv *CompactView) Render() string {
	if len(cv.tasks) == 0 {
		return cv.styles.Empty.Width(cv.width).Render("No tasks to display")
	}

	var b strings.Builder

	b.WriteString(cv.renderHeader())
	b.WriteString("\n")
	b.WriteString(cv.renderSeparator())
	b.WriteString("\n")

	visibleRows := cv.visibleRows()
	startIdx := cv.scrollOffset
	endIdx := min(startIdx+visibleRows, len(cv.tasks))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(cv.renderRow(i, cv.tasks[i]))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(cv.tasks) {
		b.WriteString("\n")
		b.WriteString(cv.styles.Separator.Render(
			fmt.Sprintf(" ↓ %d more tasks ↓ ", len(cv.tasks)-endIdx),
		))
	}

	return b.String()
}

func (cv *CompactView) renderHeader() string {
	w := cv.columnWidths()

	cells := []string{
		cv.styles.HeaderCell.Width(w.rank).Render("  #"),
		cv.styles.HeaderCell.Width(w.title).Render("Title"),
		cv.styles.HeaderCell.Width(w.status).Render("Status"),
		cv.styles.HeaderCell.Width(w.priority).Render("Pri"),
		cv.styles.HeaderCell.Width(w.money).Align(lipgloss.Right).Render("Revenue"),
		cv.styles.HeaderCell.Width(w.hours).Align(lipgloss.Right).Render("Hours"),
		cv.styles.HeaderCell.Width(w.money).Align(lipgloss.Right).Render("ROI/h"),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (cv *CompactView) renderSeparator() string {
	return cv.styles.Separator.Render(strings.Repeat("─", cv.width))
}

func (cv *CompactView) renderRow(index int, task domain.DerivedTask) string {
	isActive := index == cv.cursor

	rowStyle := cv.styles.Row
	if isActive {
		rowStyle = cv.styles.RowActive
	}

	w := cv.columnWidths()

	indicator := "  "
	if isActive {
		indicator = cv.styles.Cursor.Render("▶ ")
	}

	cells := []string{
		rowStyle.Width(w.rank).Render(indicator + cv.styles.ColRank.Render(fmt.Sprintf("%d", task.Rank))),
		rowStyle.Width(w.title).Render(ansi.Truncate(task.Title, w.title-1, "…")),
		rowStyle.Width(w.status).Render(cv.styles.status(task.Status).Render(statusAbbrev(task.Status))),
		rowStyle.Width(w.priority).Render(cv.styles.priority(task.Priority).Render(priorityAbbrev(task.Priority))),
		cv.styles.ColMoney.Width(w.money).Render(board.FormatMoney(task.Revenue)),
		cv.styles.ColMoney.Width(w.hours).Render(board.FormatHours(task.TimeTaken)),
		cv.styles.ColROI.Width(w.money).Render(board.FormatMoney(task.ROI)),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func statusAbbrev(s domain.Status) string {
	switch s {
	case domain.StatusTodo:
		return "todo"
	case domain.StatusInProgress:
		return "prog"
	case domain.StatusDone:
		return "done"
	default:
		return "????"
	}
}

func priorityAbbrev(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "hi"
	case domain.PriorityMedium:
		return "med"
	case domain.PriorityLow:
		return "lo"
	default:
		return "?"
	}
}

type columnWidths struct {
	rank     int
	title    int
	status   int
	priority int
	money    int
	hours    int
}

// columnWidths gives the title whatever the fixed columns leave over
func (cv *CompactView) columnWidths() columnWidths {
	const (
		rankWidth     = 7
		statusWidth   = 7
		priorityWidth = 5
		moneyWidth    = 12
		hoursWidth    = 8
	)

	fixed := rankWidth + statusWidth + priorityWidth + 2*moneyWidth + hoursWidth
	return columnWidths{
		rank:     rankWidth,
		title:    max(12, cv.width-fixed),
		status:   statusWidth,
		priority: priorityWidth,
		money:    moneyWidth,
		hours:    hoursWidth,
	}
}

// visibleRows is the height left after the header, separator and scroll hint
func (cv *CompactView) visibleRows() int {
	rows := cv.height - 2
	if len(cv.tasks) > rows {
		rows--
	}
	return max(1, rows)
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible
func (cv *CompactView) ensureCursorVisible() {
	visibleRows := cv.visibleRows()

	if cv.cursor < cv.scrollOffset {
		cv.scrollOffset = cv.cursor
	}
	if cv.cursor >= cv.scrollOffset+visibleRows {
		cv.scrollOffset = cv.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(cv.tasks)-visibleRows)
	cv.scrollOffset = max(0, min(cv.scrollOffset, maxOffset))
}
