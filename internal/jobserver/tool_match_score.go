package jobserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
	"github.com/j1lin0101/find-jobs-ai/internal/match"
)

func registerMatchScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_score",
		Description: "Score a resume against one job you supply (title, description, requirements). Returns a 0-100 match score, matching/missing skills and keywords, strengths, improvement tips, and metric suggestions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input MatchScoreInput) (*mcp.CallToolResult, *match.Result, error) {
		if input.Resume == "" {
			return nil, nil, errors.New("resume is required")
		}
		if input.Title == "" {
			return nil, nil, errors.New("title is required")
		}

		profile := match.Extract(input.Resume)
		result := match.Score(profile, input.Title, input.Description, input.Requirements)
		engine.IncrMatchScores()
		return nil, result, nil
	})
}
