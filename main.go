// find-jobs-ai — synthetic job search and resume scoring MCP server.
//
// Exposes six MCP tools: job_search, match_score, profile_score, and a
// local application tracker (add/list/update). Postings, companies, and
// salaries are fabricated from fixed vocabularies; the scoring core in
// internal/match is deterministic rule evaluation, not a learned model.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
	"github.com/j1lin0101/find-jobs-ai/internal/jobserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8890")
)

func main() {
	initEngine()

	slog.Info("starting find-jobs-ai",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "find-jobs-ai",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "find-jobs-ai",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		PostingsPerSearch:    env.Int("POSTINGS_PER_SEARCH", 10),
		MaxPostingsPerSearch: env.Int("MAX_POSTINGS_PER_SEARCH", 25),
		PostingSeed:          int64(env.Int("POSTING_SEED", 0)),
		SearchRatePerMin:     env.Int("SEARCH_RATE_PER_MIN", 30),
		SearchBurst:          env.Int("SEARCH_BURST", 5),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	engine.Init(c)
	engine.InitCache(env.Str("REDIS_URL", ""), c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
