package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/salesboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	TaskTitle  lipgloss.Style
	TaskNotes  lipgloss.Style
	TaskMeta   lipgloss.Style
	Rank       lipgloss.Style

	// Metrics panel
	Metrics      lipgloss.Style
	MetricLabel  lipgloss.Style
	MetricValue  lipgloss.Style
	MetricsEmpty lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Separator      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
	Snackbar     lipgloss.Style
	SnackbarKey  lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TaskNotes: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Subtext0),

		Rank: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		Metrics: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 1),

		MetricLabel: lipgloss.NewStyle().
			Foreground(Overlay1),

		MetricValue: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		MetricsEmpty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		Snackbar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Mauve).
			Foreground(Text).
			Padding(0, 1),

		SnackbarKey: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),
	}
}

// PriorityBadge returns the badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	color, ok := PriorityColors[p]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1).
		Bold(true)
}

// StatusHeader returns the header style for a status column
func (s *Styles) StatusHeader(status domain.Status, active bool) lipgloss.Style {
	base := s.ColumnHeader
	if active {
		base = s.ColumnHeaderActive
	}
	if color, ok := StatusColors[status]; ok && !active {
		base = base.Foreground(color)
	}
	return base
}

// Grade returns the style for a performance grade
func (s *Styles) Grade(g domain.Grade) lipgloss.Style {
	color, ok := GradeColors[g]
	if !ok {
		color = Subtext0
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
