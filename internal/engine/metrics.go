package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ScoreRequests      atomic.Int64
	FieldMatchRequests atomic.Int64
	FieldsRequests     atomic.Int64
	HistoryRequests    atomic.Int64
	HistoryWrites      atomic.Int64
	HistoryWriteErrors atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"score_requests":       metrics.ScoreRequests.Load(),
		"field_match_requests": metrics.FieldMatchRequests.Load(),
		"fields_requests":      metrics.FieldsRequests.Load(),
		"history_requests":     metrics.HistoryRequests.Load(),
		"history_writes":       metrics.HistoryWrites.Load(),
		"history_write_errors": metrics.HistoryWriteErrors.Load(),
		"cache_hits":           hits,
		"cache_misses":         misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"score_requests", "field_match_requests", "fields_requests",
		"history_requests", "history_writes", "history_write_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the atsserver tool layer.
func IncrScoreRequests()      { metrics.ScoreRequests.Add(1) }
func IncrFieldMatchRequests() { metrics.FieldMatchRequests.Add(1) }
func IncrFieldsRequests()     { metrics.FieldsRequests.Add(1) }
func IncrHistoryRequests()    { metrics.HistoryRequests.Add(1) }
func IncrHistoryWrites()      { metrics.HistoryWrites.Add(1) }
func IncrHistoryWriteErrors() { metrics.HistoryWriteErrors.Add(1) }
