package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Priority    map[Priority]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Priority: make(map[Priority]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Priority) > 0 || f.SearchQuery != ""
}

// Apply filters a list of derived tasks
func (f *Filter) Apply(tasks []DerivedTask) []DerivedTask {
	if !f.IsActive() {
		return tasks
	}

	result := make([]DerivedTask, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task.Task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	if len(f.Priority) > 0 && !f.Priority[t.Priority] {
		return false
	}

	// Search query (case-insensitive, matches title, notes or ID)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Notes), query) &&
			!strings.Contains(strings.ToLower(t.ID), query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Priority = make(map[Priority]bool)
	f.SearchQuery = ""
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}
