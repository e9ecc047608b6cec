package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests    atomic.Int64
	PostingsGenerated atomic.Int64
	MatchScores       atomic.Int64
	ProfileScores     atomic.Int64
	TrackerOps        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":    metrics.SearchRequests.Load(),
		"postings_generated": metrics.PostingsGenerated.Load(),
		"match_scores":       metrics.MatchScores.Load(),
		"profile_scores":     metrics.ProfileScores.Load(),
		"tracker_ops":        metrics.TrackerOps.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP
// metrics endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "postings_generated",
		"match_scores", "profile_scores", "tracker_ops",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// IncrSearchRequests increments the search request counter.
func IncrSearchRequests() { metrics.SearchRequests.Add(1) }

// IncrPostingsGenerated adds n to the generated-posting counter.
func IncrPostingsGenerated(n int) { metrics.PostingsGenerated.Add(int64(n)) }

// IncrMatchScores increments the match score counter.
func IncrMatchScores() { metrics.MatchScores.Add(1) }

// IncrProfileScores increments the profile score counter.
func IncrProfileScores() { metrics.ProfileScores.Add(1) }

// IncrTrackerOps increments the tracker operation counter.
func IncrTrackerOps() { metrics.TrackerOps.Add(1) }
