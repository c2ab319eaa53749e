package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByROI      SortField = "roi"
	SortByRevenue  SortField = "revenue"
	SortByPriority SortField = "priority"
	SortByCreated  SortField = "created"
)

// SortFields lists the fields in the order the UI cycles through them
var SortFields = []SortField{SortByROI, SortByRevenue, SortByPriority, SortByCreated}

// ParseSortField returns the matching field, or SortByROI for unknown input
func ParseSortField(v string) SortField {
	for _, f := range SortFields {
		if string(f) == v {
			return f
		}
	}
	return SortByROI
}

// SortOrder represents sort direction
type SortOrder int

const (
	SortDesc SortOrder = iota
	SortAsc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with descending order
// If field is same, flips the direction
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		s.Flip()
		return
	}
	s.Field = field
	s.Order = SortDesc
}

// Flip reverses the sort direction
func (s *Sort) Flip() {
	if s.Order == SortAsc {
		s.Order = SortDesc
	} else {
		s.Order = SortAsc
	}
}

// Cycle moves to the next field in SortFields
func (s *Sort) Cycle() {
	for i, f := range SortFields {
		if f == s.Field {
			s.Toggle(SortFields[(i+1)%len(SortFields)])
			return
		}
	}
	s.Toggle(SortByROI)
}

// Label is a short description for the status bar, e.g. "roi ↓"
func (s Sort) Label() string {
	arrow := "↓"
	if s.Order == SortAsc {
		arrow = "↑"
	}
	return string(s.Field) + " " + arrow
}

// Apply sorts a list of derived tasks. Rank is left untouched.
func (s *Sort) Apply(tasks []DerivedTask) []DerivedTask {
	if len(tasks) == 0 {
		return tasks
	}

	// Make a copy to avoid modifying the input slice
	result := make([]DerivedTask, len(tasks))
	copy(result, tasks)

	var less func(a, b DerivedTask) bool
	switch s.Field {
	case SortByRevenue:
		less = func(a, b DerivedTask) bool { return a.Revenue < b.Revenue }
	case SortByPriority:
		// Low < Medium < High, so descending puts High first
		less = func(a, b DerivedTask) bool { return a.Priority.Rank() > b.Priority.Rank() }
	case SortByCreated:
		less = func(a, b DerivedTask) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		less = func(a, b DerivedTask) bool { return a.ROI < b.ROI }
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortAsc {
			return less(result[i], result[j])
		}
		return less(result[j], result[i])
	})

	return result
}
