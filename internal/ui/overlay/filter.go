package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// FilterChangedMsg is emitted whenever the filter menu changes the filter
type FilterChangedMsg struct{}

var filterKeys = map[string]domain.Priority{
	"h": domain.PriorityHigh,
	"m": domain.PriorityMedium,
	"l": domain.PriorityLow,
}

// FilterMenu is a menu overlay for priority filtering
type FilterMenu struct {
	filter *domain.Filter
	styles *Styles
}

// NewFilterMenu creates a new filter menu for the given filter
func NewFilterMenu(filter *domain.Filter) *FilterMenu {
	return &FilterMenu{
		filter: filter,
		styles: New(),
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q", "enter":
		return m, closeCmd
	case "c":
		m.filter.Clear()
		return m, changed
	}

	if p, ok := filterKeys[key.String()]; ok {
		m.filter.TogglePriority(p)
		return m, changed
	}
	return m, nil
}

func changed() tea.Msg { return FilterChangedMsg{} }

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	b.WriteString(m.styles.MenuHeader.Render("Priority"))
	b.WriteString("\n")
	for _, p := range domain.Priorities {
		key := strings.ToLower(p.String()[:1])
		check := "[ ]"
		style := m.styles.MenuItem
		if m.filter.Priority[p] {
			check = "[x]"
			style = m.styles.MenuItemActive
		}
		b.WriteString("  " + m.styles.MenuKey.Render(key) + " " + style.Render(check+" "+p.String()))
		b.WriteString("\n")
	}

	if m.filter.SearchQuery != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.MenuItem.Render("Search: " + m.filter.SearchQuery))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("c clear all • Esc close"))
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	return 40, 12
}
