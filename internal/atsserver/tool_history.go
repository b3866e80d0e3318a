package atsserver

import (
	"context"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerScoreHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_history",
		Description: "List past resume scoring runs from the local history (SQLite). Optionally filter by field. Returns score breakdowns only; resume text is never stored.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ats.ScoreHistoryListInput) (*mcp.CallToolResult, *ats.ScoreHistoryResult, error) {
		engine.IncrHistoryRequests()

		result, err := ats.ListScoreHistory(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
