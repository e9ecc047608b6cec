// Package jobserver wires the scoring core, the posting generator, and
// the tracker into MCP tools. All validation, caching, rate limiting,
// and metrics live here; the core packages stay pure.
package jobserver

import (
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
)

// RegisterTools registers all tools on the given MCP server:
// job_search, match_score, profile_score, and the tracker trio.
func RegisterTools(server *mcp.Server) {
	registerJobSearch(server)
	registerMatchScore(server)
	registerProfileScore(server)
	registerTracker(server)
}

var (
	limiter     *rate.Limiter
	limiterOnce sync.Once
)

// searchLimiter returns the shared job_search limiter, built lazily
// from engine config. A non-positive rate disables limiting.
func searchLimiter() *rate.Limiter {
	limiterOnce.Do(func() {
		perMin := engine.Cfg.SearchRatePerMin
		if perMin <= 0 {
			return
		}
		burst := engine.Cfg.SearchBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), burst)
	})
	return limiter
}
