package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f *TaskForm, s string) *TaskForm {
	for _, r := range s {
		m, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		f = m.(*TaskForm)
	}
	return f
}

func press(f *TaskForm, key tea.KeyType) (*TaskForm, tea.Cmd) {
	m, cmd := f.Update(tea.KeyMsg{Type: key})
	return m.(*TaskForm), cmd
}

// collect runs cmd and flattens tea.BatchMsg results
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewTaskForm(t *testing.T) {
	f := NewTaskForm()

	require.NotNil(t, f)
	assert.Equal(t, domain.PriorityMedium, f.priority)
	assert.Equal(t, domain.StatusTodo, f.status)
	assert.Equal(t, focusTitle, f.focusIndex)
	assert.Equal(t, "New Task", f.Title())
	assert.False(t, f.Editing())
}

func TestNewEditTaskForm(t *testing.T) {
	task := domain.Task{
		ID:        "t-9",
		Title:     "Renewal call",
		Revenue:   750,
		TimeTaken: 1.5,
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusInProgress,
		Notes:     "ask about seats",
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	f := NewEditTaskForm(task)

	assert.True(t, f.Editing())
	assert.Equal(t, "Edit Task", f.Title())
	assert.Equal(t, "Renewal call", f.title.Value())
	assert.Equal(t, "750", f.revenue.Value())
	assert.Equal(t, "1.5", f.hours.Value())
	assert.Equal(t, "ask about seats", f.notes.Value())
	assert.Equal(t, domain.PriorityHigh, f.priority)
	assert.Equal(t, domain.StatusInProgress, f.status)
	assert.Contains(t, f.View(), "Save Task")
}

func TestTaskForm_View(t *testing.T) {
	view := NewTaskForm().View()

	for _, want := range []string{"Title:", "Revenue:", "Hours:", "Priority:", "Status:", "Notes:", "Create Task"} {
		assert.Contains(t, view, want)
	}
}

func TestTaskForm_EscapeCloses(t *testing.T) {
	_, cmd := press(NewTaskForm(), tea.KeyEsc)
	require.NotNil(t, cmd)

	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestTaskForm_TabNavigation(t *testing.T) {
	f := NewTaskForm()

	for want := focusRevenue; want < focusCount; want++ {
		f, _ = press(f, tea.KeyTab)
		assert.Equal(t, want, f.focusIndex)
	}

	// wraps to title
	f, _ = press(f, tea.KeyTab)
	assert.Equal(t, focusTitle, f.focusIndex)

	f, _ = press(f, tea.KeyShiftTab)
	assert.Equal(t, focusSubmit, f.focusIndex)
}

func TestTaskForm_Selectors(t *testing.T) {
	f := NewTaskForm()
	f.setFocus(focusPriority)

	f, _ = press(f, tea.KeyRight)
	assert.Equal(t, domain.PriorityLow, f.priority)
	f, _ = press(f, tea.KeyRight)
	assert.Equal(t, domain.PriorityHigh, f.priority, "priority selector wraps")

	f.setFocus(focusStatus)
	f, _ = press(f, tea.KeyLeft)
	assert.Equal(t, domain.StatusDone, f.status)
}

func TestTaskForm_SubmitCreate(t *testing.T) {
	f := NewTaskForm()
	f = typeText(f, "Call client")
	f, _ = press(f, tea.KeyTab)
	f = typeText(f, "$1,200")
	f, _ = press(f, tea.KeyTab)
	f = typeText(f, "2.5")

	_, cmd := press(f, tea.KeyCtrlS)
	msgs := collect(cmd)
	require.Len(t, msgs, 2)

	submitted, ok := msgs[0].(TaskSubmittedMsg)
	require.True(t, ok)
	assert.Empty(t, submitted.ID)
	assert.Equal(t, "Call client", submitted.Input.Title)
	assert.Equal(t, 1200.0, submitted.Input.Revenue)
	assert.Equal(t, 2.5, submitted.Input.TimeTaken)
	assert.Equal(t, domain.PriorityMedium, submitted.Input.Priority)
	assert.Equal(t, domain.StatusTodo, submitted.Input.Status)

	_, ok = msgs[1].(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestTaskForm_SubmitDefaults(t *testing.T) {
	_, cmd := press(NewTaskForm(), tea.KeyCtrlS)
	msgs := collect(cmd)
	require.NotEmpty(t, msgs)

	submitted := msgs[0].(TaskSubmittedMsg)
	assert.Equal(t, "", submitted.Input.Title, "blank title is left for the store to default")
	assert.Equal(t, 0.0, submitted.Input.Revenue)
	assert.Equal(t, 1.0, submitted.Input.TimeTaken)
}

func TestTaskForm_SubmitEditCarriesID(t *testing.T) {
	f := NewEditTaskForm(domain.Task{ID: "t-1", Title: "Demo", Revenue: 10, TimeTaken: 1, Priority: domain.PriorityLow, Status: domain.StatusTodo})

	_, cmd := press(f, tea.KeyCtrlS)
	msgs := collect(cmd)
	require.NotEmpty(t, msgs)

	submitted := msgs[0].(TaskSubmittedMsg)
	assert.Equal(t, "t-1", submitted.ID)
	assert.Equal(t, domain.PriorityLow, submitted.Input.Priority)
}

func TestTaskForm_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name    string
		revenue string
		hours   string
		wantErr string
	}{
		{"revenue not a number", "lots", "1", "Revenue must be a number"},
		{"zero hours", "100", "0", "Hours must be a positive number"},
		{"negative hours", "100", "-2", "Hours must be a positive number"},
		{"hours not a number", "100", "abc", "Hours must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTaskForm()
			f.revenue.SetValue(tt.revenue)
			f.hours.SetValue(tt.hours)

			f, cmd := press(f, tea.KeyCtrlS)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, f.err)
			assert.Contains(t, f.View(), tt.wantErr)
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, err := parseNumber("  ", 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, n)

	n, err = parseNumber("$2,500.50", 0)
	require.NoError(t, err)
	assert.Equal(t, 2500.5, n)

	_, err = parseNumber("NaN", 0)
	assert.Error(t, err)

	_, err = parseNumber("+Inf", 0)
	assert.Error(t, err)
}
