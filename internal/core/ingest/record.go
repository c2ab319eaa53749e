// Package ingest turns raw, possibly malformed task records into valid tasks.
//
// Loading runs in two passes. Normalize fills in timestamps and coerces the
// numeric fields; Sanitize then enforces every Task invariant (ids, enums,
// titles) and produces domain.Task values. Neither pass ever rejects a record.
package ingest

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one raw task-like object as decoded from JSON
type Record map[string]any

// Field names shared by the raw format and the JSON encoding of domain.Task
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldRevenue     = "revenue"
	FieldTimeTaken   = "timeTaken"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldNotes       = "notes"
	FieldCreatedAt   = "createdAt"
	FieldCompletedAt = "completedAt"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Record) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func (r Record) number(key string) (float64, bool) {
	var f float64
	switch v := r[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// timestamp reads key as a time. Strings in any of timeLayouts and numbers
// (epoch milliseconds) are accepted.
func (r Record) timestamp(key string) (time.Time, bool) {
	switch v := r[key].(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	if ms, ok := r.number(key); ok {
		return fromMillis(ms)
	}
	return time.Time{}, false
}

// maxEpochMillis is the ECMAScript time value limit, 100,000,000 days either side of 1970
const maxEpochMillis = 8.64e15

// fromMillis converts epoch milliseconds, rejecting values that do not land in
// a four-digit year and so cannot be written as RFC 3339
func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	t := time.UnixMilli(int64(ms)).UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}
