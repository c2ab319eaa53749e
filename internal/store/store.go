// Package store holds the canonical in-memory task list.
//
// A Store is owned by a single goroutine (the Bubbletea update loop); it does
// no locking. All mutation goes through Add, Update, Delete and UndoDelete.
package store

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/riordanpawley/salesboard/internal/core/ingest"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// LoadState tracks the one-shot initial load
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadRunning
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadRunning:
		return "running"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store is the task list plus its single-level undo cache
type Store struct {
	tasks       []domain.Task
	lastDeleted *domain.Task

	// version is bumped on every mutation; derived views are cached against it
	version        uint64
	derived        []domain.DerivedTask
	derivedVersion uint64
	metrics        domain.Metrics
	metricsVersion uint64

	loadState LoadState
	loadErr   string
	closed    bool

	now    func() time.Time
	newID  ingest.IDFunc
	logger *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides the id generator used by Add
func WithIDFunc(f ingest.IDFunc) Option {
	return func(s *Store) { s.newID = f }
}

// New creates an empty store
func New(logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		tasks:  []domain.Task{},
		now:    time.Now,
		newID:  ingest.NewID,
		logger: logger,
		// start versions apart so the first read computes
		version: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) touch() {
	s.version++
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add inserts a new task. An id is generated when id is empty (or already taken).
func (s *Store) Add(in domain.NewTask, id string) domain.Task {
	now := s.now()

	id = strings.TrimSpace(id)
	for id == "" || s.indexOf(id) >= 0 {
		id = s.newID()
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = fmt.Sprintf("Untitled %d", len(s.tasks)+1)
	}
	priority := in.Priority
	if !priority.Valid() {
		priority = domain.PriorityMedium
	}
	status := in.Status
	if !status.Valid() {
		status = domain.StatusTodo
	}

	task := domain.Task{
		ID:        id,
		Title:     title,
		Revenue:   domain.FiniteOr(in.Revenue, 0),
		TimeTaken: domain.PositiveHours(in.TimeTaken),
		Priority:  priority,
		Status:    status,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
	}
	if status == domain.StatusDone {
		c := now
		task.CompletedAt = &c
	}

	s.tasks = append(s.tasks, task)
	s.touch()
	s.logger.Debug("task added", "id", task.ID, "status", task.Status)
	return task
}

// Update merges p into the task with the given id. Unknown ids are ignored and
// reported by the false return.
func (s *Store) Update(id string, p domain.Patch) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update skipped, unknown task", "id", id)
		return domain.Task{}, false
	}

	if p.Priority != nil && !p.Priority.Valid() {
		p.Priority = nil
	}
	if p.Status != nil && !p.Status.Valid() {
		p.Status = nil
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		p.Title = nil
	} else if p.Title != nil {
		p.Title = domain.Ptr(strings.TrimSpace(*p.Title))
	}

	s.tasks[i] = s.tasks[i].Apply(p, s.now())
	s.touch()
	s.logger.Debug("task updated", "id", id, "status", s.tasks[i].Status)
	return s.tasks[i], true
}

// Delete removes the task with the given id and keeps it as the only undo
// candidate. Unknown ids are ignored.
func (s *Store) Delete(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete skipped, unknown task", "id", id)
		return domain.Task{}, false
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.lastDeleted = &removed
	s.touch()
	s.logger.Debug("task deleted", "id", id)
	return removed, true
}

// UndoDelete re-appends the last deleted task to the end of the list
func (s *Store) UndoDelete() (domain.Task, bool) {
	if s.lastDeleted == nil {
		return domain.Task{}, false
	}

	restored := *s.lastDeleted
	s.lastDeleted = nil
	if s.indexOf(restored.ID) >= 0 {
		// an Add reused the id in the meantime
		restored.ID = s.newID()
	}
	s.tasks = append(s.tasks, restored)
	s.touch()
	s.logger.Debug("task restored", "id", restored.ID)
	return restored, true
}

// CanUndo reports whether an undo candidate exists
func (s *Store) CanUndo() bool {
	return s.lastDeleted != nil
}

// Get returns the task with the given id
func (s *Store) Get(id string) (domain.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// Tasks returns a copy of the list in insertion order
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Derived returns the tasks with ROI and rank, ordered by ROI.
// The result is shared between calls until the next mutation; callers must not modify it.
func (s *Store) Derived() []domain.DerivedTask {
	if s.derivedVersion != s.version {
		s.derived = domain.Derive(s.tasks)
		s.derivedVersion = s.version
	}
	return s.derived
}

// Metrics returns the aggregate metrics for the current list
func (s *Store) Metrics() domain.Metrics {
	if s.metricsVersion != s.version {
		s.metrics = domain.ComputeMetrics(s.tasks)
		s.metricsVersion = s.version
	}
	return s.metrics
}
