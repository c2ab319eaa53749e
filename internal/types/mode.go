// Package types contains shared types used across the application.
package types

// Mode represents the current input mode of the board
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeForm
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeForm:
		return "FORM"
	default:
		return "UNKNOWN"
	}
}
