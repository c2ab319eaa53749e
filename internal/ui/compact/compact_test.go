package compact

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/salesboard/internal/domain"
)

func createTestTasks(count int) []domain.DerivedTask {
	tasks := make([]domain.Task, count)
	for i := range tasks {
		tasks[i] = domain.Task{
			ID:        fmt.Sprintf("t-%d", i+1),
			Title:     fmt.Sprintf("Task %d", i+1),
			Revenue:   float64(100 * (count - i)),
			TimeTaken: 1,
			Priority:  domain.PriorityMedium,
			Status:    domain.StatusTodo,
		}
	}
	return domain.Derive(tasks)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		index, n, want int
	}{
		{-1, 3, 0},
		{1, 3, 1},
		{5, 3, 2},
		{0, 0, 0},
		{4, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.index, tt.n); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.n, got, tt.want)
		}
	}
}

func TestIndexOf(t *testing.T) {
	tasks := createTestTasks(3)

	if got := IndexOf(tasks, "t-2"); got != 1 {
		t.Errorf("IndexOf(t-2) = %d, want 1", got)
	}
	if got := IndexOf(tasks, "missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}

func TestSetCursor(t *testing.T) {
	cv := NewCompactView(createTestTasks(5), 100, 20)

	cv.SetCursor(3)
	if cv.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", cv.Cursor())
	}

	cv.SetCursor(10)
	if cv.Cursor() != 4 {
		t.Errorf("expected cursor clamped to 4, got %d", cv.Cursor())
	}

	task, ok := cv.Current()
	if !ok || task.ID != "t-5" {
		t.Errorf("expected t-5 under cursor, got %+v", task)
	}
}

func TestCurrentEmpty(t *testing.T) {
	cv := NewCompactView(nil, 100, 20)

	if _, ok := cv.Current(); ok {
		t.Error("empty view should have no current task")
	}
}

func TestRenderEmpty(t *testing.T) {
	cv := NewCompactView(nil, 80, 20)

	if !strings.Contains(cv.Render(), "No tasks to display") {
		t.Error("expected empty state message")
	}
}

func TestRenderWithTasks(t *testing.T) {
	cv := NewCompactView(createTestTasks(3), 100, 20)

	output := ansi.Strip(cv.Render())

	for _, want := range []string{"Title", "Revenue", "ROI/h", "Task 1", "Task 3", "$300", "todo", "med"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.Contains(output, "▶ 1") {
		t.Error("expected cursor on the first ranked row")
	}
}

func TestRenderScrolls(t *testing.T) {
	cv := NewCompactView(createTestTasks(20), 100, 8)

	output := ansi.Strip(cv.Render())
	lines := strings.Split(output, "\n")
	if len(lines) > 8 {
		t.Errorf("expected at most 8 lines, got %d", len(lines))
	}
	if !strings.Contains(output, "more tasks") {
		t.Error("expected scroll indicator")
	}

	cv.SetCursor(19)
	output = ansi.Strip(cv.Render())
	if !strings.Contains(output, "Task 20") {
		t.Error("cursor row should scroll into view")
	}
	if strings.Contains(output, "more tasks") {
		t.Error("no rows remain below the last task")
	}
}

func TestTitleTruncation(t *testing.T) {
	tasks := domain.Derive([]domain.Task{{
		ID:        "long",
		Title:     strings.Repeat("x", 200),
		Revenue:   10,
		TimeTaken: 1,
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusDone,
	}})
	cv := NewCompactView(tasks, 80, 10)

	for _, line := range strings.Split(cv.Render(), "\n") {
		if w := ansi.StringWidth(line); w > 80 {
			t.Errorf("line wider than view: %d", w)
		}
	}
	output := ansi.Strip(cv.Render())
	if !strings.Contains(output, "…") || !strings.Contains(output, "done") || !strings.Contains(output, "hi") {
		t.Errorf("unexpected row:\n%s", output)
	}
}
