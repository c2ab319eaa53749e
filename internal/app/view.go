package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/store"
	"github.com/riordanpawley/salesboard/internal/ui/board"
	"github.com/riordanpawley/salesboard/internal/ui/compact"
	"github.com/riordanpawley/salesboard/internal/ui/metrics"
	"github.com/riordanpawley/salesboard/internal/ui/statusbar"
	"github.com/riordanpawley/salesboard/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.store.LoadState() == store.LoadRunning {
		return m.renderLoading()
	}

	// Centered modal overlays replace the board
	if current := m.overlayStack.Current(); current != nil {
		if w, _ := current.Size(); w > 0 {
			return m.renderModal()
		}
	}

	visible := m.visibleTasks()

	var top string
	if m.showMetrics {
		top = metrics.Render(m.store.Metrics(), m.store.Len(), m.styles, m.width)
	}

	bottom := m.renderNotifications()

	// Full-width overlays (search bar) take the status bar's place
	footer := m.renderStatusBar(len(visible))
	if current := m.overlayStack.Current(); current != nil {
		footer = current.View()
	}

	used := lipgloss.Height(footer)
	if top != "" {
		used += lipgloss.Height(top)
	}
	if bottom != "" {
		used += lipgloss.Height(bottom)
	}
	boardHeight := max(m.height-used, 5)

	var boardView string
	if m.listView {
		list := compact.NewCompactView(visible, m.width, boardHeight)
		list.SetCursor(m.row)
		boardView = list.Render()
	} else {
		boardView = board.Render(board.BuildColumns(visible), m.cursor, m.styles, m.width, boardHeight)
	}

	parts := make([]string, 0, 4)
	if top != "" {
		parts = append(parts, top)
	}
	parts = append(parts, boardView)
	if bottom != "" {
		parts = append(parts, bottom)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading tasks from "+m.config.Location()+"...",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderModal draws the current overlay centered on screen
func (m Model) renderModal() string {
	current := m.overlayStack.Current()
	overlayWidth, overlayHeight := current.Size()

	view := current.View()
	if title := current.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), view)
	}
	view = m.styles.Overlay.
		Width(min(overlayWidth, m.width-2)).
		Height(min(overlayHeight, m.height-2)).
		MaxHeight(m.height).
		Render(view)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// renderNotifications stacks the snackbar and toasts in the bottom-right corner
func (m Model) renderNotifications() string {
	r := toast.New(m.styles)
	var parts []string
	if v := r.Render(m.toasts, m.width); v != "" {
		parts = append(parts, v)
	}
	if v := r.RenderSnackbar(m.snackbar, m.width); v != "" {
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, parts...))
}

func (m Model) renderStatusBar(visible int) string {
	info := []string{fmt.Sprintf("%d/%d tasks", visible, m.store.Len()), "sort " + m.sort.Label()}
	if m.filter.IsActive() {
		info = append(info, "filtered")
	}
	if m.store.CanUndo() {
		info = append(info, "u undo")
	}
	return statusbar.New(m.Mode(), m.width, m.styles).WithInfo(strings.Join(info, " · ")).Render()
}
