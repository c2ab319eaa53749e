// Package overlay contains the modal components drawn on top of the board.
package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a menu entry is chosen
type SelectionMsg struct {
	Key   string
	Value any
}

// TaskSubmittedMsg is emitted when the task form is saved.
// ID is empty for a new task.
type TaskSubmittedMsg struct {
	ID    string
	Input domain.NewTask
}

func closeCmd() tea.Msg { return CloseOverlayMsg{} }
