package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
	"github.com/j1lin0101/find-jobs-ai/internal/match"
	"github.com/j1lin0101/find-jobs-ai/internal/postings"
)

func registerJobSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_search",
		Description: "Generate synthetic job postings for a role and score each one against a resume. Returns postings sorted by match score (0-100) with matching/missing skills, canned improvement tips, and an optional profile-completeness rating. All postings are fabricated from fixed vocabularies; nothing is fetched from real job boards.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobSearchInput) (*mcp.CallToolResult, JobSearchOutput, error) {
		out, err := runJobSearch(ctx, input)
		return nil, out, err
	})
}

// runJobSearch generates postings, scores them, and sorts by match.
// Factored out of the tool closure so tests can drive it directly.
func runJobSearch(ctx context.Context, input JobSearchInput) (JobSearchOutput, error) {
	if input.Query == "" {
		return JobSearchOutput{}, errors.New("query is required")
	}

	if lim := searchLimiter(); lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return JobSearchOutput{}, fmt.Errorf("job_search: rate limit wait: %w", err)
		}
	}
	engine.IncrSearchRequests()

	limit := input.Limit
	if limit <= 0 {
		limit = engine.Cfg.PostingsPerSearch
	}
	if hard := engine.Cfg.MaxPostingsPerSearch; hard > 0 && limit > hard {
		limit = hard
	}

	cacheKey := engine.CacheKey("job_search", input.Query, input.Location,
		input.ProfileURL, strconv.Itoa(limit), input.Resume)
	if out, ok := engine.CacheLoadJSON[JobSearchOutput](ctx, cacheKey); ok {
		return out, nil
	}

	seed := engine.Cfg.PostingSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generated := postings.NewGenerator(seed).Generate(input.Query, input.Location, limit)
	engine.IncrPostingsGenerated(len(generated))

	// One extraction pass per resume, reused across all postings.
	profile := match.Extract(input.Resume)

	scored := make([]ScoredPosting, 0, len(generated))
	for _, p := range generated {
		m := match.Score(profile, p.Title, p.Description, p.Requirements)
		engine.IncrMatchScores()

		sp := ScoredPosting{Posting: p, Match: m}
		// Score against the full description, return a snippet.
		sp.Description = engine.TruncateRunes(p.Description, 300, "...")
		if input.ProfileURL != "" {
			sp.Profile = match.ScoreProfile(input.ProfileURL, p.Title, p.Description, p.Requirements, m)
			engine.IncrProfileScores()
		}
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Match.Score > scored[j].Match.Score
	})

	topScore := 0
	if len(scored) > 0 {
		topScore = scored[0].Match.Score
	}

	out := JobSearchOutput{
		Query:    input.Query,
		Postings: scored,
		Summary:  fmt.Sprintf("Scored %d synthetic postings for %q. Top match: %d/100.", len(scored), input.Query, topScore),
	}
	engine.CacheStoreJSON(ctx, cacheKey, out)

	slog.Info("job_search complete",
		slog.String("query", input.Query),
		slog.Int("postings", len(scored)),
		slog.Int("top_score", topScore),
	)
	return out, nil
}
