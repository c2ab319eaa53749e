package domain

import "sort"

// DerivedTask is a task enriched with its computed ROI and rank.
// It is rebuilt on every read and never stored.
type DerivedTask struct {
	Task
	ROI  float64 `json:"roi"`
	Rank int     `json:"rank"` // 1-based position in the ROI ordering
}

// Derive computes ROI for each task and returns them ordered by
// ROI (desc), priority (High first), title and finally ID.
func Derive(tasks []Task) []DerivedTask {
	result := make([]DerivedTask, len(tasks))
	for i, t := range tasks {
		result[i] = DerivedTask{Task: t, ROI: ROI(t)}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return lessByROI(result[i], result[j])
	})

	for i := range result {
		result[i].Rank = i + 1
	}
	return result
}

func lessByROI(a, b DerivedTask) bool {
	if a.ROI != b.ROI {
		return a.ROI > b.ROI
	}
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.ID < b.ID
}
