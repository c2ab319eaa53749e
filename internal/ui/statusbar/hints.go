package statusbar

import "github.com/riordanpawley/salesboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "n: new  e: edit  d: delete  Space: status  s: sort  ?: help  q: quit"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: clear"
	case types.ModeForm:
		return "Tab: next field  Ctrl+S: save  Esc: cancel"
	default:
		return ""
	}
}
