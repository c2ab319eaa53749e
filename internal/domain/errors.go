package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrBadStatus  = errors.New("unexpected response status")
	ErrNotAnArray = errors.New("payload is not a JSON array")
	ErrNoSource   = errors.New("no task source configured")
)

// SourceError represents a failure loading raw tasks
type SourceError struct {
	Op      string // Operation: "fetch", "decode"
	Source  string // URL or file path
	Status  int    // HTTP status, when there was a response
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *SourceError) Error() string {
	prefix := "source " + e.Op
	if e.Source != "" {
		prefix = fmt.Sprintf("source %s [%s]", e.Op, e.Source)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d", prefix, e.Status)
	}
	if e.Message != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix + " failed"
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
