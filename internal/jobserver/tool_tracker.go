package jobserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/j1lin0101/find-jobs-ai/internal/engine"
	"github.com/j1lin0101/find-jobs-ai/internal/tracker"
)

func registerTracker(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_add",
		Description: "Save a posting to the local application tracker, with the match score it had when saved. Statuses: saved, applied, interview, offer, rejected.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input tracker.AddInput) (*mcp.CallToolResult, *tracker.Result, error) {
		result, err := tracker.Add(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrTrackerOps()
		return nil, result, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_list",
		Description: "List saved postings from the local application tracker, newest update first, optionally filtered by status.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input tracker.ListInput) (*mcp.CallToolResult, *tracker.ListResult, error) {
		result, err := tracker.List(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrTrackerOps()
		return nil, result, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_update",
		Description: "Update the status and/or notes of a saved posting in the local application tracker.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input tracker.UpdateInput) (*mcp.CallToolResult, *tracker.Result, error) {
		result, err := tracker.Update(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrTrackerOps()
		return nil, result, nil
	})
}
