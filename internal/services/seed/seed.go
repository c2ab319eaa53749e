// Package seed generates synthetic sales tasks for an empty data source.
package seed

import (
	"math/rand/v2"
	"time"

	"github.com/riordanpawley/salesboard/internal/core/ingest"
	"github.com/riordanpawley/salesboard/internal/domain"
)

var titles = []string{
	"Discovery call with prospect",
	"Product demo",
	"Send proposal",
	"Negotiate contract terms",
	"Follow-up email sequence",
	"Quarterly business review",
	"Renewal conversation",
	"Upsell premium tier",
	"Cold outreach batch",
	"Partner referral intro",
	"Trade show lead follow-up",
	"Pricing workshop",
	"Onboarding kickoff",
	"Case study interview",
	"Procurement paperwork",
}

var notes = []string{
	"",
	"",
	"Decision maker joining",
	"Needs security questionnaire",
	"Budget approved for Q3",
	"Competitor also in the running",
}

// Generate returns n synthetic tasks. Priority is weighted towards Medium and
// status is uniform. The records go through ingest.Prepare, so the result
// satisfies every Task invariant.
func Generate(n int, rng *rand.Rand, now time.Time, newID ingest.IDFunc) []domain.Task {
	if n <= 0 {
		return []domain.Task{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0x5eed))
	}

	records := make([]ingest.Record, n)
	for i := range records {
		status := domain.Statuses[rng.IntN(len(domain.Statuses))]
		created := now.Add(-time.Duration(rng.IntN(30*24)+1) * time.Hour)

		r := ingest.Record{
			ingest.FieldTitle:     titles[rng.IntN(len(titles))],
			ingest.FieldRevenue:   float64((rng.IntN(100) + 1) * 50), // 50..5000
			ingest.FieldTimeTaken: float64(rng.IntN(16)+1) / 2,       // 0.5..8h
			ingest.FieldPriority:  string(pickPriority(rng)),
			ingest.FieldStatus:    string(status),
			ingest.FieldNotes:     notes[rng.IntN(len(notes))],
			ingest.FieldCreatedAt: created,
		}
		if status == domain.StatusDone {
			// completed some time after creation, never in the future
			elapsed := now.Sub(created)
			r[ingest.FieldCompletedAt] = created.Add(time.Duration(rng.Int64N(int64(elapsed)) + 1))
		}
		records[i] = r
	}

	return ingest.Prepare(records, now, newID)
}

// pickPriority: 25% High, 50% Medium, 25% Low
func pickPriority(rng *rand.Rand) domain.Priority {
	switch rng.IntN(4) {
	case 0:
		return domain.PriorityHigh
	case 3:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
