// Package engine holds the ambient infrastructure behind the MCP tools:
// process configuration, the tiered result cache, and operational
// counters. The scoring core in internal/match stays free of all of it.
package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	PostingsPerSearch    int           // synthetic postings generated per search
	MaxPostingsPerSearch int           // hard cap on caller-requested limit
	PostingSeed          int64         // 0 = seed from the clock per search
	SearchRatePerMin     int           // job_search calls allowed per minute
	SearchBurst          int           // burst allowance for the rate limiter
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
