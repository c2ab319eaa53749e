package domain

import (
	"math"
	"testing"
	"time"
)

func TestStatus_Column(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusTodo, 0},
		{StatusInProgress, 1},
		{StatusDone, 2},
		{Status("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Column(); got != tt.want {
				t.Errorf("Status.Column() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		status Status
		want   Status
	}{
		{StatusTodo, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusTodo},
		{Status("bogus"), StatusTodo},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Next(); got != tt.want {
				t.Errorf("Status.Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   Status
		wantOK bool
	}{
		{"Todo", StatusTodo, true},
		{"todo", StatusTodo, true},
		{"In Progress", StatusInProgress, true},
		{"in_progress", StatusInProgress, true},
		{"IN-PROGRESS", StatusInProgress, true},
		{" Done ", StatusDone, true},
		{"Unknown", StatusTodo, false},
		{"", StatusTodo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatus(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseStatus(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{"High", PriorityHigh, true},
		{"low", PriorityLow, true},
		{"MEDIUM", PriorityMedium, true},
		{"urgent", PriorityMedium, false},
		{"", PriorityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePriority(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePriority(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTask_Apply(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	base := Task{
		ID:        "t-1",
		Title:     "Call client",
		Revenue:   100,
		TimeTaken: 2,
		Priority:  PriorityHigh,
		Status:    StatusTodo,
		CreatedAt: created,
	}

	t.Run("entering done stamps completedAt", func(t *testing.T) {
		got := base.Apply(Patch{Status: Ptr(StatusDone)}, now)
		if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
			t.Fatalf("CompletedAt = %v, want %v", got.CompletedAt, now)
		}
	})

	t.Run("repeating done keeps completedAt", func(t *testing.T) {
		first := base.Apply(Patch{Status: Ptr(StatusDone)}, now)
		second := first.Apply(Patch{Status: Ptr(StatusDone)}, now.Add(time.Hour))
		if !second.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", second.CompletedAt, now)
		}
	})

	t.Run("explicit completedAt wins", func(t *testing.T) {
		explicit := now.Add(-48 * time.Hour)
		got := base.Apply(Patch{Status: Ptr(StatusDone), CompletedAt: &explicit}, now)
		if !got.CompletedAt.Equal(explicit) {
			t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, explicit)
		}
	})

	t.Run("leaving done keeps completedAt", func(t *testing.T) {
		done := base.Apply(Patch{Status: Ptr(StatusDone)}, now)
		got := done.Apply(Patch{Status: Ptr(StatusTodo)}, now.Add(time.Hour))
		if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, now)
		}
	})

	t.Run("non-positive time forced to one", func(t *testing.T) {
		got := base.Apply(Patch{TimeTaken: Ptr(-3.0)}, now)
		if got.TimeTaken != 1 {
			t.Errorf("TimeTaken = %v, want 1", got.TimeTaken)
		}
	})

	t.Run("non-finite revenue reset", func(t *testing.T) {
		got := base.Apply(Patch{Revenue: Ptr(math.Inf(1))}, now)
		if got.Revenue != 0 {
			t.Errorf("Revenue = %v, want 0", got.Revenue)
		}
	})

	t.Run("createdAt and id untouched", func(t *testing.T) {
		got := base.Apply(Patch{Title: Ptr("Renamed"), Notes: Ptr("  follow up  ")}, now)
		if got.ID != base.ID || !got.CreatedAt.Equal(created) {
			t.Errorf("identity changed: %+v", got)
		}
		if got.Title != "Renamed" || got.Notes != "follow up" {
			t.Errorf("fields not merged: %+v", got)
		}
		if got.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", got.CompletedAt)
		}
	})
}
