package overlay

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
)

const (
	focusTitle = iota
	focusRevenue
	focusHours
	focusPriority
	focusStatus
	focusNotes
	focusSubmit
	focusCount
)

// TaskForm is the create/edit form for a task
type TaskForm struct {
	editID     string
	title      textinput.Model
	revenue    textinput.Model
	hours      textinput.Model
	notes      textarea.Model
	priority   domain.Priority
	status     domain.Status
	focusIndex int
	err        string
	styles     *Styles
}

// NewTaskForm creates an empty form for a new task
func NewTaskForm() *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Call with prospect..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	rev := textinput.New()
	rev.Placeholder = "0"
	rev.CharLimit = 15
	rev.Width = 15

	hrs := textinput.New()
	hrs.Placeholder = "1"
	hrs.CharLimit = 8
	hrs.Width = 8

	ta := textarea.New()
	ta.Placeholder = "Notes (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(50)
	ta.SetHeight(3)

	return &TaskForm{
		title:      ti,
		revenue:    rev,
		hours:      hrs,
		notes:      ta,
		priority:   domain.PriorityMedium,
		status:     domain.StatusTodo,
		focusIndex: focusTitle,
		styles:     New(),
	}
}

// NewEditTaskForm creates a form prefilled from an existing task
func NewEditTaskForm(t domain.Task) *TaskForm {
	f := NewTaskForm()
	f.editID = t.ID
	f.title.SetValue(t.Title)
	f.revenue.SetValue(strconv.FormatFloat(t.Revenue, 'f', -1, 64))
	f.hours.SetValue(strconv.FormatFloat(t.TimeTaken, 'f', -1, 64))
	f.notes.SetValue(t.Notes)
	f.priority = t.Priority
	f.status = t.Status
	return f
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, closeCmd

		case "ctrl+s":
			return f, f.submit()

		case "tab", "down":
			f.setFocus((f.focusIndex + 1) % focusCount)
			return f, nil

		case "shift+tab", "up":
			f.setFocus((f.focusIndex - 1 + focusCount) % focusCount)
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
			if f.focusIndex != focusNotes {
				f.setFocus(f.focusIndex + 1)
				return f, nil
			}
		}

		switch f.focusIndex {
		case focusPriority:
			f.priority = cycle(domain.Priorities, f.priority, key.String())
			return f, nil
		case focusStatus:
			f.status = cycle(domain.Statuses, f.status, key.String())
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusRevenue:
		f.revenue, cmd = f.revenue.Update(msg)
	case focusHours:
		f.hours, cmd = f.hours.Update(msg)
	case focusNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return f, cmd
}

// cycle moves through options with left/right (or h/l)
func cycle[T comparable](options []T, cur T, key string) T {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
		}
	}
	switch key {
	case "left", "h":
		idx = (idx - 1 + len(options)) % len(options)
	case "right", "l", " ", "space":
		idx = (idx + 1) % len(options)
	}
	return options[idx]
}

func (f *TaskForm) setFocus(i int) {
	f.focusIndex = i
	f.title.Blur()
	f.revenue.Blur()
	f.hours.Blur()
	f.notes.Blur()

	switch i {
	case focusTitle:
		f.title.Focus()
	case focusRevenue:
		f.revenue.Focus()
	case focusHours:
		f.hours.Focus()
	case focusNotes:
		f.notes.Focus()
	}
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	f.field(&b, focusTitle, "Title", f.title.View())
	f.field(&b, focusRevenue, "Revenue", f.revenue.View())
	f.field(&b, focusHours, "Hours", f.hours.View())
	f.field(&b, focusPriority, "Priority", selector(domain.Priorities, f.priority, f.styles))
	f.field(&b, focusStatus, "Status", selector(domain.Statuses, f.status, f.styles))
	f.field(&b, focusNotes, "Notes", "")
	b.WriteString(f.notes.View())
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	label := "[ Create Task ]"
	if f.Editing() {
		label = "[ Save Task ]"
	}
	b.WriteString(submitStyle.Render(label))

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.err))
	}
	b.WriteString("\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Next field"),
		f.styles.MenuKey.Render("←/→") + " " + f.styles.Footer.Render("Choose"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Save"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskForm) field(b *strings.Builder, idx int, label, value string) {
	style := f.styles.Label
	if f.focusIndex == idx {
		style = f.styles.LabelFocused
	}
	b.WriteString(style.Render(label + ":"))
	b.WriteString("  ")
	b.WriteString(value)
	b.WriteString("\n")
}

func selector[T fmt.Stringer](options []T, cur T, s *Styles) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		style := s.MenuItem
		indicator := " "
		if o.String() == cur.String() {
			style = s.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, o)))
	}
	return strings.Join(parts, " ")
}

// submit validates the numeric fields and emits TaskSubmittedMsg.
// Blank numbers fall back to the store defaults (0 revenue, 1 hour).
func (f *TaskForm) submit() tea.Cmd {
	revenue, err := parseNumber(f.revenue.Value(), 0)
	if err != nil {
		f.err = "Revenue must be a number"
		return nil
	}
	hours, err := parseNumber(f.hours.Value(), 1)
	if err != nil || hours <= 0 {
		f.err = "Hours must be a positive number"
		return nil
	}
	f.err = ""

	msg := TaskSubmittedMsg{
		ID: f.editID,
		Input: domain.NewTask{
			Title:     strings.TrimSpace(f.title.Value()),
			Revenue:   revenue,
			TimeTaken: hours,
			Priority:  f.priority,
			Status:    f.status,
			Notes:     strings.TrimSpace(f.notes.Value()),
		},
	}
	return tea.Batch(
		func() tea.Msg { return msg },
		closeCmd,
	)
}

func parseNumber(v string, def float64) (float64, error) {
	v = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(v), "$"), ",", ""))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.Editing() {
		return "Edit Task"
	}
	return "New Task"
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return 70, 22
}

// Editing reports whether the form edits an existing task
func (f *TaskForm) Editing() bool {
	return f.editID != ""
}
