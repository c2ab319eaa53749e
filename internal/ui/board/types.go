package board

import "github.com/riordanpawley/salesboard/internal/domain"

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.DerivedTask
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// BuildColumns buckets tasks by status, one column per status in board order.
// The order of tasks within a column follows the input order.
func BuildColumns(tasks []domain.DerivedTask) []Column {
	columns := make([]Column, len(domain.Statuses))
	for i, status := range domain.Statuses {
		columns[i] = Column{Status: status, Title: status.String()}
	}
	for _, t := range tasks {
		idx := t.Status.Column()
		columns[idx].Tasks = append(columns[idx].Tasks, t)
	}
	return columns
}

// Clamp keeps the cursor inside the bounds of columns
func (c Cursor) Clamp(columns []Column) Cursor {
	if len(columns) == 0 {
		return Cursor{}
	}
	c.Column = max(0, min(c.Column, len(columns)-1))
	n := len(columns[c.Column].Tasks)
	if n == 0 {
		c.Task = 0
	} else {
		c.Task = max(0, min(c.Task, n-1))
	}
	return c
}

// Selected returns the task under the cursor, if any
func (c Cursor) Selected(columns []Column) (domain.DerivedTask, bool) {
	if c.Column < 0 || c.Column >= len(columns) {
		return domain.DerivedTask{}, false
	}
	tasks := columns[c.Column].Tasks
	if c.Task < 0 || c.Task >= len(tasks) {
		return domain.DerivedTask{}, false
	}
	return tasks[c.Task], true
}

// Locate returns the cursor position of the task with the given id
func Locate(columns []Column, id string) (Cursor, bool) {
	for ci, col := range columns {
		for ti, t := range col.Tasks {
			if t.ID == id {
				return Cursor{Column: ci, Task: ti}, true
			}
		}
	}
	return Cursor{}, false
}
