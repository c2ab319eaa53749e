package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// Message types for async operations

type tasksLoadedMsg struct {
	tasks []domain.Task
}

type loadFailedMsg struct {
	err error
}

type snackbarExpiredMsg struct {
	id int
}

type toastTickMsg time.Time

// loadCmd returns a command that fetches the initial task list
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.config.FetchTimeout())
		defer cancel()

		tasks, err := m.loader.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// showSnackbar replaces any open snackbar and schedules its expiry
func (m *Model) showSnackbar(message string) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	timeout := m.config.UndoTimeout()

	m.snackbar = &Toast{
		ID:       id,
		Level:    ToastInfo,
		Message:  message,
		Expires:  m.now().Add(timeout),
		Undoable: true,
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return snackbarExpiredMsg{id: id}
	})
}

// addToast adds a toast notification and schedules its expiry
func (m *Model) addToast(level ToastLevel, message string) tea.Cmd {
	m.nextToastID++
	timeout := m.config.ToastTimeout()
	m.toasts = append(m.toasts, Toast{
		ID:      m.nextToastID,
		Level:   level,
		Message: message,
		Expires: m.now().Add(timeout),
	})
	return tea.Tick(timeout, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// expireToasts removes expired toasts. Toasts without an expiry are kept.
func (m *Model) expireToasts(now time.Time) {
	filtered := make([]Toast, 0, len(m.toasts))
	for _, toast := range m.toasts {
		if toast.Expires.IsZero() || !toast.Expired(now) {
			filtered = append(filtered, toast)
		}
	}
	m.toasts = filtered
}
