package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// IDFunc generates a fresh task id
type IDFunc func() string

// NewID is the default IDFunc
func NewID() string {
	return uuid.NewString()
}

// Sanitize is the second load-time pass. It produces tasks that satisfy every
// Task invariant: unique non-empty ids, non-empty titles, valid priority and
// status, positive timeTaken and UTC timestamps. Duplicate ids keep their first
// occurrence; later ones get a random suffix.
func Sanitize(records []Record, now time.Time, newID IDFunc) []domain.Task {
	if newID == nil {
		newID = NewID
	}

	tasks := make([]domain.Task, 0, len(records))

	// explicit ids are reserved up front so a generated id never takes one
	// from a record further down the list
	explicit := make(map[string]bool, len(records))
	for _, r := range records {
		if id := strings.TrimSpace(r.str(FieldID)); id != "" {
			explicit[id] = true
		}
	}
	seen := make(map[string]bool, len(records))
	taken := func(id string) bool { return seen[id] || explicit[id] }

	for i, r := range records {
		base := strings.TrimSpace(r.str(FieldID))
		var id string
		switch {
		case base == "":
			id = newID()
			for taken(id) {
				id = newID()
			}
		case !seen[base]:
			id = base
		default:
			id = base + "-" + shortID(newID())
			for taken(id) {
				id = base + "-" + shortID(newID())
			}
		}
		seen[id] = true

		title := strings.TrimSpace(r.str(FieldTitle))
		if title == "" {
			title = fmt.Sprintf("Untitled %d", i+1)
		}

		priority, _ := domain.ParsePriority(r.str(FieldPriority))
		status, _ := domain.ParseStatus(r.str(FieldStatus))

		revenue, ok := r.number(FieldRevenue)
		if !ok {
			revenue = 0
		}
		hours, ok := r.number(FieldTimeTaken)
		if !ok {
			hours = 1
		}

		created, completed := resolveTimes(r, i, now)

		tasks = append(tasks, domain.Task{
			ID:          id,
			Title:       title,
			Revenue:     revenue,
			TimeTaken:   domain.PositiveHours(hours),
			Priority:    priority,
			Status:      status,
			Notes:       strings.TrimSpace(r.str(FieldNotes)),
			CreatedAt:   created,
			CompletedAt: completed,
		})
	}
	return tasks
}

// Prepare runs both passes
func Prepare(records []Record, now time.Time, newID IDFunc) []domain.Task {
	return Sanitize(Normalize(records, now), now, newID)
}

// shortID returns the first 8 characters of id with dashes removed
func shortID(id string) string {
	s := strings.ReplaceAll(id, "-", "")
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
