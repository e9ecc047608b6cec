package jobserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
	"github.com/j1lin0101/find-jobs-ai/internal/match"
)

func registerProfileScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_score",
		Description: "Rate how complete a professional profile URL looks for a target role. Returns a 0-100 completeness score, a suggested headline, endorsement suggestions, skill gaps, and improvement tips. Supplying a resume blends the resume match score in.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileScoreInput) (*mcp.CallToolResult, *match.ProfileResult, error) {
		if input.Title == "" {
			return nil, nil, errors.New("title is required")
		}

		var matchResult *match.Result
		if input.Resume != "" {
			profile := match.Extract(input.Resume)
			matchResult = match.Score(profile, input.Title, input.Description, input.Requirements)
			engine.IncrMatchScores()
		}

		result := match.ScoreProfile(input.ProfileURL, input.Title, input.Description, input.Requirements, matchResult)
		engine.IncrProfileScores()
		return nil, result, nil
	})
}
