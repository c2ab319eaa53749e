package metrics

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	got := ansi.Strip(Render(domain.ZeroMetrics, 0, styles.New(), 160))

	assert.Contains(t, got, "No tasks yet")
}

func TestRender_Values(t *testing.T) {
	m := domain.Metrics{
		TotalRevenue:      4500,
		TotalTimeTaken:    9,
		TimeEfficiencyPct: 33.33,
		RevenuePerHour:    500,
		AverageROI:        612.5,
		Grade:             domain.GradeExcellent,
	}

	got := ansi.Strip(Render(m, 3, styles.New(), 200))

	for _, want := range []string{"Tasks 3", "$4,500", "Hours 9", "$500", "33.3%", "$612.50/h", "Excellent"} {
		assert.Contains(t, got, want)
	}
}
