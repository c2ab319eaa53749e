package domain

import "math"

// Grade is the categorical performance grade derived from average ROI
type Grade string

const (
	GradeExcellent        Grade = "Excellent"
	GradeGood             Grade = "Good"
	GradeFair             Grade = "Fair"
	GradeNeedsImprovement Grade = "Needs Improvement"
)

// Grade thresholds, in revenue per hour
const (
	ExcellentROI = 500.0
	GoodROI      = 200.0
	FairROI      = 50.0
)

// GradeFor maps an average ROI onto its grade band
func GradeFor(avgROI float64) Grade {
	switch {
	case avgROI >= ExcellentROI:
		return GradeExcellent
	case avgROI >= GoodROI:
		return GradeGood
	case avgROI >= FairROI:
		return GradeFair
	default:
		return GradeNeedsImprovement
	}
}

// Metrics is an aggregate snapshot over a task list
type Metrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTimeTaken    float64 `json:"totalTimeTaken"`
	TimeEfficiencyPct float64 `json:"timeEfficiencyPct"`
	RevenuePerHour    float64 `json:"revenuePerHour"`
	AverageROI        float64 `json:"averageROI"`
	Grade             Grade   `json:"performanceGrade"`
}

// ZeroMetrics is the value reported for an empty task list
var ZeroMetrics = Metrics{Grade: GradeNeedsImprovement}

// ROI returns revenue earned per hour spent on t, rounded to cents
func ROI(t Task) float64 {
	if t.TimeTaken <= 0 {
		return 0
	}
	return round2(FiniteOr(t.Revenue, 0) / t.TimeTaken)
}

// ComputeMetrics aggregates tasks into a Metrics snapshot
func ComputeMetrics(tasks []Task) Metrics {
	if len(tasks) == 0 {
		return ZeroMetrics
	}

	var m Metrics
	var doneTime, roiSum float64
	for _, t := range tasks {
		m.TotalRevenue += FiniteOr(t.Revenue, 0)
		m.TotalTimeTaken += t.TimeTaken
		if t.IsDone() {
			doneTime += t.TimeTaken
		}
		roiSum += ROI(t)
	}

	if m.TotalTimeTaken > 0 {
		m.RevenuePerHour = round2(m.TotalRevenue / m.TotalTimeTaken)
		m.TimeEfficiencyPct = round2(doneTime / m.TotalTimeTaken * 100)
	}
	m.AverageROI = round2(roiSum / float64(len(tasks)))
	m.Grade = GradeFor(m.AverageROI)
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
