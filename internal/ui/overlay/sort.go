package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	Label       string
	Field       domain.SortField
	Description string
}

// SortMenu is a menu overlay for sorting configuration
type SortMenu struct {
	sort    *domain.Sort
	options []SortOption
	styles  *Styles
}

// NewSortMenu creates a new sort menu for the given sort state
func NewSortMenu(sort *domain.Sort) *SortMenu {
	return &SortMenu{
		sort:   sort,
		styles: New(),
		options: []SortOption{
			{Key: "r", Label: "ROI", Field: domain.SortByROI, Description: "Revenue per hour"},
			{Key: "v", Label: "Revenue", Field: domain.SortByRevenue, Description: "Deal value"},
			{Key: "p", Label: "Priority", Field: domain.SortByPriority, Description: "High first"},
			{Key: "c", Label: "Created", Field: domain.SortByCreated, Description: "Newest first"},
		},
	}
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if k := key.String(); k == "esc" || k == "q" {
		return m, closeCmd
	}

	for _, opt := range m.options {
		if opt.Key == key.String() {
			// Toggle handles both field change and direction flip
			m.sort.Toggle(opt.Field)
			sel := SelectionMsg{Key: opt.Key, Value: *m.sort}
			return m, func() tea.Msg { return sel }
		}
	}
	return m, nil
}

// View renders the menu
func (m *SortMenu) View() string {
	var b strings.Builder

	for _, opt := range m.options {
		isActive := m.sort.Field == opt.Field

		keyStyle, labelStyle := m.styles.MenuItem, m.styles.MenuItem
		if isActive {
			keyStyle, labelStyle = m.styles.MenuKey, m.styles.MenuItemActive
		}

		b.WriteString(keyStyle.Render("[" + opt.Key + "]"))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(opt.Label))
		b.WriteString(" ")
		b.WriteString(m.styles.Footer.UnsetMarginTop().Render("(" + opt.Description + ")"))

		if isActive {
			arrow := "↑"
			if m.sort.Order == domain.SortDesc {
				arrow = "↓"
			}
			b.WriteString(" ")
			b.WriteString(m.styles.MenuItemActive.Render("● " + arrow))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("Press same key to flip direction • Esc to close"))
	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 56, len(m.options) + 6
}
