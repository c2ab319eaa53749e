// Package domain contains the core sales-task types and the pure metric functions over them.
package domain

import (
	"math"
	"strings"
	"time"
)

// Task is one unit of sellable work
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Revenue     float64    `json:"revenue"`
	TimeTaken   float64    `json:"timeTaken"` // hours, always > 0
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Status represents task status
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Column returns the board column index for this status
func (s Status) Column() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	default:
		return 0
	}
}

// Next returns the status that follows s, wrapping Done back to Todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// ParseStatus maps loose input onto a Status.
// Matching ignores case, spaces, dashes and underscores.
func ParseStatus(v string) (Status, bool) {
	switch squash(v) {
	case "todo":
		return StatusTodo, true
	case "inprogress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	}
	return StatusTodo, false
}

// Priority represents task priority
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority, highest first
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns 0 for High, 1 for Medium and 2 for Low (unknown sorts last)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps loose input onto a Priority, defaulting to Medium
func ParsePriority(v string) (Priority, bool) {
	switch squash(v) {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	}
	return PriorityMedium, false
}

func squash(v string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(v)))
}

// NewTask is the user-supplied input for creating a task
type NewTask struct {
	Title     string
	Revenue   float64
	TimeTaken float64
	Priority  Priority
	Status    Status
	Notes     string
}

// Patch is a shallow update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Revenue     *float64
	TimeTaken   *float64
	Priority    *Priority
	Status      *Status
	Notes       *string
	CompletedAt *time.Time
}

// IsDone reports whether the task is in the Done status
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// Apply merges p into t and returns the result.
// now is used to stamp CompletedAt when the task first enters Done.
func (t Task) Apply(p Patch, now time.Time) Task {
	wasDone := t.IsDone()

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Revenue != nil {
		t.Revenue = *p.Revenue
	}
	if p.TimeTaken != nil {
		t.TimeTaken = *p.TimeTaken
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Notes != nil {
		t.Notes = strings.TrimSpace(*p.Notes)
	}

	if p.CompletedAt != nil {
		c := *p.CompletedAt
		t.CompletedAt = &c
	} else if !wasDone && t.IsDone() && t.CompletedAt == nil {
		c := now
		t.CompletedAt = &c
	}

	t.Revenue = FiniteOr(t.Revenue, 0)
	t.TimeTaken = PositiveHours(t.TimeTaken)
	return t
}

// FiniteOr returns v, or def when v is NaN or infinite
func FiniteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// PositiveHours forces a duration to be strictly positive, using 1 as the fallback
func PositiveHours(v float64) float64 {
	v = FiniteOr(v, 1)
	if v <= 0 {
		return 1
	}
	return v
}

// Ptr returns a pointer to v, for building patches
func Ptr[T any](v T) *T {
	return &v
}
