package ingest_test

import (
	"fmt"
	"time"

	"github.com/riordanpawley/salesboard/internal/core/ingest"
)

func ExamplePrepare() {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	records := []ingest.Record{
		{"id": "t-1", "title": "", "status": "Unknown", "timeTaken": 0.0},
	}

	tasks := ingest.Prepare(records, now, nil)
	fmt.Println(tasks[0].Title, tasks[0].Status, tasks[0].TimeTaken)
	// Output: Untitled 1 Todo 1
}
