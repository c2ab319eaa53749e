// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/config"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/store"
	"github.com/riordanpawley/salesboard/internal/types"
	"github.com/riordanpawley/salesboard/internal/ui/board"
	"github.com/riordanpawley/salesboard/internal/ui/compact"
	"github.com/riordanpawley/salesboard/internal/ui/overlay"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeForm   = types.ModeForm
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// Loader produces the initial task list
type Loader interface {
	Load(ctx context.Context) ([]domain.Task, error)
}

// Model is the main application model
type Model struct {
	store  *store.Store
	loader Loader

	// Board state
	cursor      board.Cursor
	row         int  // cursor in the compact list
	listView    bool // ranked list instead of the board
	filter      *domain.Filter
	sort        *domain.Sort
	showMetrics bool

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast
	snackbar     *Toast
	nextToastID  int
	spinner      spinner.Model

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
	now    func() time.Time

	// ctx is cancelled on quit so an in-flight load is abandoned
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new application model
func New(cfg *config.Config, st *store.Store, loader Loader, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		store:        st,
		loader:       loader,
		filter:       domain.NewFilter(),
		sort:         &domain.Sort{Field: domain.ParseSortField(cfg.Board.DefaultSort), Order: domain.SortDesc},
		showMetrics:  !cfg.Board.HideMetrics,
		overlayStack: overlay.NewStack(),
		spinner:      s,
		styles:       styles.New(),
		config:       cfg,
		logger:       logger,
		now:          time.Now,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init starts the one-shot load
func (m Model) Init() tea.Cmd {
	if !m.store.BeginLoad() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.store.LoadState() != store.LoadRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tasksLoadedMsg:
		if !m.store.CompleteLoad(msg.tasks) {
			return m, nil
		}
		m.clamp()
		cmd := m.addToast(ToastSuccess, fmt.Sprintf("Loaded %d tasks", len(msg.tasks)))
		return m, cmd

	case loadFailedMsg:
		if !m.store.FailLoad(msg.err) {
			return m, nil
		}
		// load failures stay until dismissed
		m.nextToastID++
		m.toasts = append(m.toasts, Toast{
			ID:      m.nextToastID,
			Level:   ToastError,
			Message: "Failed to load tasks: " + m.store.LoadError(),
		})
		return m, nil

	case snackbarExpiredMsg:
		if m.snackbar != nil && m.snackbar.ID == msg.id {
			m.snackbar = nil
		}
		return m, nil

	case toastTickMsg:
		m.expireToasts(time.Time(msg))
		return m, nil

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleSubmit(msg)

	case overlay.SearchMsg:
		m.filter.SearchQuery = msg.Query
		m.clamp()
		if search, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			search.SetMatchCount(len(m.visibleTasks()))
		}
		return m, nil

	case overlay.SelectionMsg, overlay.FilterChangedMsg:
		m.clamp()
		return m, nil
	}

	// Remaining messages (cursor blink etc.) belong to the open overlay
	return m, m.overlayStack.Update(msg)
}

// handleKey processes keyboard input on the board
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return m.quit()
	case "ctrl+l":
		return m, tea.ClearScreen
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	case "m":
		m.showMetrics = !m.showMetrics
		return m, nil
	case "v":
		m.toggleView()
		return m, nil
	case "x", "esc":
		m.dismiss()
		return m, nil
	}

	// board is read-only until the load settles
	if m.store.LoadState() == store.LoadRunning {
		return m, nil
	}

	if m.listView {
		m.moveRow(key)
	} else {
		m.moveCursor(key)
	}

	switch key {
	// Task operations
	case "n":
		return m, m.overlayStack.Push(overlay.NewTaskForm())
	case "e", "enter":
		if t, ok := m.selected(); ok {
			return m, m.overlayStack.Push(overlay.NewEditTaskForm(t.Task))
		}
	case "d", "delete":
		return m.deleteSelected()
	case "u":
		return m.undo()
	case " ", "space":
		if t, ok := m.selected(); ok {
			return m.update(t.ID, domain.Patch{Status: domain.Ptr(t.Status.Next())})
		}
	case "1", "2", "3":
		if t, ok := m.selected(); ok {
			p := domain.Priorities[key[0]-'1']
			return m.update(t.ID, domain.Patch{Priority: &p})
		}

	// View
	case "s":
		m.sort.Cycle()
	case "S":
		m.sort.Flip()
	case ",":
		return m, m.overlayStack.Push(overlay.NewSortMenu(m.sort))
	case "f":
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.filter))
	case "/":
		search := overlay.NewSearchOverlay(m.filter.SearchQuery)
		search.SetMatchCount(len(m.visibleTasks()))
		return m, m.overlayStack.Push(search)
	}

	m.clamp()
	return m, nil
}

// moveCursor handles board navigation keys
func (m *Model) moveCursor(key string) {
	switch key {
	case "h", "left":
		m.cursor.Column--
	case "l", "right":
		m.cursor.Column++
	case "j", "down":
		m.cursor.Task++
	case "k", "up":
		m.cursor.Task--
	case "g", "home":
		m.cursor.Task = 0
	case "G", "end":
		columns := m.columns()
		m.cursor.Task = len(columns[m.cursor.Clamp(columns).Column].Tasks) - 1
	}
}

// moveRow handles list navigation keys
func (m *Model) moveRow(key string) {
	switch key {
	case "j", "down":
		m.row++
	case "k", "up":
		m.row--
	case "g", "home":
		m.row = 0
	case "G", "end":
		m.row = len(m.visibleTasks()) - 1
	}
}

// toggleView switches between the board and the ranked list, keeping the selection
func (m *Model) toggleView() {
	t, ok := m.selected()
	m.listView = !m.listView
	if ok {
		m.focus(t.ID)
	}
}

// selected returns the task under the cursor of the active view
func (m Model) selected() (domain.DerivedTask, bool) {
	if m.listView {
		tasks := m.visibleTasks()
		if m.row < 0 || m.row >= len(tasks) {
			return domain.DerivedTask{}, false
		}
		return tasks[m.row], true
	}
	return m.cursor.Selected(m.columns())
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	removed, ok := m.store.Delete(t.ID)
	if !ok {
		return m, nil
	}
	m.clamp()
	cmd := m.showSnackbar(fmt.Sprintf("Deleted %q", removed.Title))
	return m, cmd
}

func (m Model) undo() (tea.Model, tea.Cmd) {
	restored, ok := m.store.UndoDelete()
	if !ok {
		cmd := m.addToast(ToastInfo, "Nothing to undo")
		return m, cmd
	}
	m.snackbar = nil
	m.focus(restored.ID)
	cmd := m.addToast(ToastSuccess, fmt.Sprintf("Restored %q", restored.Title))
	return m, cmd
}

func (m Model) update(id string, p domain.Patch) (tea.Model, tea.Cmd) {
	updated, ok := m.store.Update(id, p)
	if !ok {
		cmd := m.addToast(ToastWarning, "Task no longer exists")
		return m, cmd
	}
	m.focus(updated.ID)
	return m, nil
}

func (m Model) handleSubmit(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	in := msg.Input
	if msg.ID == "" {
		added := m.store.Add(in, "")
		m.focus(added.ID)
		cmd := m.addToast(ToastSuccess, fmt.Sprintf("Added %q", added.Title))
		return m, cmd
	}

	p := domain.Patch{
		Title:     &in.Title,
		Revenue:   &in.Revenue,
		TimeTaken: &in.TimeTaken,
		Priority:  &in.Priority,
		Status:    &in.Status,
		Notes:     &in.Notes,
	}
	return m.update(msg.ID, p)
}

// quit abandons any in-flight load and closes the store before exiting
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.store.Close()
	return m, tea.Quit
}

// focus moves both cursors onto the task with id, if it is visible
func (m *Model) focus(id string) {
	if i := compact.IndexOf(m.visibleTasks(), id); i >= 0 {
		m.row = i
	}
	if c, ok := board.Locate(m.columns(), id); ok {
		m.cursor = c
	}
	m.clamp()
}

// clamp keeps both cursors inside the visible tasks
func (m *Model) clamp() {
	m.cursor = m.cursor.Clamp(m.columns())
	m.row = compact.Clamp(m.row, len(m.visibleTasks()))
}

// dismiss closes the snackbar first, then any toasts
func (m *Model) dismiss() {
	if m.snackbar != nil {
		m.snackbar = nil
		return
	}
	m.toasts = nil
}

// visibleTasks returns the filtered, sorted task list
func (m Model) visibleTasks() []domain.DerivedTask {
	return m.sort.Apply(m.filter.Apply(m.store.Derived()))
}

// columns converts the visible tasks into board columns
func (m Model) columns() []board.Column {
	return board.BuildColumns(m.visibleTasks())
}

// Mode reports the input mode implied by the open overlay
func (m Model) Mode() Mode {
	switch m.overlayStack.Current().(type) {
	case *overlay.SearchOverlay:
		return ModeSearch
	case *overlay.TaskForm:
		return ModeForm
	default:
		return ModeNormal
	}
}
