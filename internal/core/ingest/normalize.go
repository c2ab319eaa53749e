package ingest

import (
	"time"

	"github.com/riordanpawley/salesboard/internal/domain"
)

const day = 24 * time.Hour

// Normalize is the first load-time pass. It returns copies of records with
// createdAt and completedAt resolved to time.Time values, revenue coerced to a
// number (default 0) and timeTaken to a positive number (default 1).
// Ids, titles and enum fields are left for Sanitize.
func Normalize(records []Record, now time.Time) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		r := rec.clone()

		created, completed := resolveTimes(rec, i, now)
		r[FieldCreatedAt] = created
		if completed != nil {
			r[FieldCompletedAt] = *completed
		} else {
			delete(r, FieldCompletedAt)
		}

		revenue, ok := rec.number(FieldRevenue)
		if !ok {
			revenue = 0
		}
		r[FieldRevenue] = revenue

		hours, ok := rec.number(FieldTimeTaken)
		if !ok {
			hours = 1
		}
		r[FieldTimeTaken] = domain.PositiveHours(hours)

		out[i] = r
	}
	return out
}

// resolveTimes derives createdAt (falling back to now minus index+1 days, so
// undated records keep a strictly decreasing order) and completedAt (falling
// back to a day after createdAt for Done records).
func resolveTimes(r Record, index int, now time.Time) (time.Time, *time.Time) {
	created, ok := r.timestamp(FieldCreatedAt)
	if !ok {
		created = now.Add(-time.Duration(index+1) * day)
	}
	created = created.UTC()

	if completed, ok := r.timestamp(FieldCompletedAt); ok {
		c := completed.UTC()
		return created, &c
	}

	if status, _ := domain.ParseStatus(r.str(FieldStatus)); status == domain.StatusDone {
		c := created.Add(day)
		return created, &c
	}
	return created, nil
}
