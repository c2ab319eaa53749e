// Package source loads the raw task list from a URL or file and turns it into tasks.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/riordanpawley/salesboard/internal/core/ingest"
	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/riordanpawley/salesboard/internal/services/seed"
)

// Client fetches and prepares tasks
type Client struct {
	fetcher   Fetcher
	seedCount int
	logger    *slog.Logger

	now   func() time.Time
	newID ingest.IDFunc
	rng   *rand.Rand
}

// NewClient creates a new source client with dependency injection.
// seedCount tasks are generated when the source holds an empty array.
func NewClient(fetcher Fetcher, seedCount int, logger *slog.Logger) *Client {
	return &Client{
		fetcher:   fetcher,
		seedCount: seedCount,
		logger:    logger,
		now:       time.Now,
		newID:     ingest.NewID,
	}
}

// Load fetches the payload, decodes it as a JSON array of records and runs the
// ingest passes. An empty array yields generated seed tasks instead.
func (c *Client) Load(ctx context.Context) ([]domain.Task, error) {
	loc := c.fetcher.Location()
	c.logger.Debug("fetching tasks", "source", loc)

	data, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	records, err := decode(data)
	if err != nil {
		return nil, &domain.SourceError{Op: "decode", Source: loc, Message: "invalid task payload", Err: err}
	}

	now := c.now()
	if len(records) == 0 {
		c.logger.Info("source is empty, generating seed tasks", "source", loc, "count", c.seedCount)
		return seed.Generate(c.seedCount, c.rng, now, c.newID), nil
	}

	tasks := ingest.Prepare(records, now, c.newID)
	c.logger.Debug("fetched tasks", "source", loc, "count", len(tasks))
	return tasks, nil
}

// decode accepts a JSON array. Elements that are not objects become empty
// records so they still yield (defaulted) tasks.
func decode(data []byte) ([]ingest.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrNotAnArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	records := make([]ingest.Record, 0, len(raw))
	for _, item := range raw {
		var r ingest.Record
		if err := json.Unmarshal(item, &r); err != nil || r == nil {
			r = ingest.Record{}
		}
		records = append(records, r)
	}
	return records, nil
}
