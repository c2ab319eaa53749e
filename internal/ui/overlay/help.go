package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return h, closeCmd
		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
		case "g":
			h.scroll = 0
		case "G":
			h.scroll = h.maxScroll
		}
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Keymap() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.MenuHeader.Render(cat.Name + ":"))
		content.WriteString("\n")
		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.MenuKey.Render(padRight(binding.Key, 7)) + " " + h.styles.MenuItem.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}
	return result
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 56, h.viewHeight + 4
}

// Keymap returns every keybinding grouped by category
func Keymap() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Move between columns"},
				{Key: "j/k", Description: "Move up/down in column"},
				{Key: "g/G", Description: "Jump to top/bottom of column"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "n", Description: "New task"},
				{Key: "e/Enter", Description: "Edit task"},
				{Key: "d", Description: "Delete task"},
				{Key: "u", Description: "Undo last delete"},
				{Key: "Space", Description: "Advance status"},
				{Key: "1/2/3", Description: "Set priority High/Medium/Low"},
			},
		},
		{
			Name: "View",
			Bindings: []KeyBinding{
				{Key: "/", Description: "Search"},
				{Key: "f", Description: "Priority filter"},
				{Key: "s", Description: "Cycle sort field"},
				{Key: "S", Description: "Flip sort order"},
				{Key: ",", Description: "Sort menu"},
				{Key: "m", Description: "Toggle metrics panel"},
				{Key: "v", Description: "Toggle ranked list view"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "x/Esc", Description: "Dismiss notification"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
