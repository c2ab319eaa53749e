package store

import "github.com/riordanpawley/salesboard/internal/domain"

// BeginLoad moves the store from LoadIdle to LoadRunning. It returns false if a
// load was already started, so the initial fetch runs at most once.
func (s *Store) BeginLoad() bool {
	if s.loadState != LoadIdle || s.closed {
		return false
	}
	s.loadState = LoadRunning
	s.logger.Debug("load started")
	return true
}

// CompleteLoad replaces the task list with the loaded tasks.
// It is ignored unless a load is running and the store is still open.
func (s *Store) CompleteLoad(tasks []domain.Task) bool {
	if s.loadState != LoadRunning || s.closed {
		s.logger.Debug("load result dropped", "state", s.loadState, "closed", s.closed)
		return false
	}
	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
	s.loadState = LoadReady
	s.touch()
	s.logger.Info("tasks loaded", "count", len(tasks))
	return true
}

// FailLoad records the load error message
func (s *Store) FailLoad(err error) bool {
	if s.loadState != LoadRunning || s.closed {
		return false
	}
	s.loadState = LoadFailed
	s.loadErr = err.Error()
	s.logger.Error("failed to load tasks", "error", err)
	return true
}

// LoadState returns the current load state
func (s *Store) LoadState() LoadState {
	return s.loadState
}

// LoadError returns the load failure message, or "" when none
func (s *Store) LoadError() string {
	return s.loadErr
}

// Close marks the store as torn down; late load results are dropped
func (s *Store) Close() {
	s.closed = true
}
