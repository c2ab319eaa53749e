package compact

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

// Styles holds the styling for the compact list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style
	Empty      lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Column styles
	ColRank  lipgloss.Style
	ColMoney lipgloss.Style
	ColROI   lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Italic(true).
			Align(lipgloss.Center),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		ColRank: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		ColMoney: lipgloss.NewStyle().
			Foreground(styles.Text).
			Align(lipgloss.Right),

		ColROI: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Bold(true).
			Align(lipgloss.Right),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),
	}
}

// status returns the colored style for a status cell
func (s *Styles) status(st domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.StatusColors[st])
}

// priority returns the colored style for a priority cell
func (s *Styles) priority(p domain.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.PriorityColors[p]).Bold(p == domain.PriorityHigh)
}
