package types

import "time"

// Toast represents a notification message.
// An Undoable toast is the delete snackbar; at most one is shown at a time.
type Toast struct {
	ID       int
	Level    ToastLevel
	Message  string
	Expires  time.Time
	Undoable bool
}

// Expired reports whether the toast should no longer be shown at now
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// String returns the lowercase level name
func (l ToastLevel) String() string {
	switch l {
	case ToastInfo:
		return "info"
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	default:
		return "unknown"
	}
}
