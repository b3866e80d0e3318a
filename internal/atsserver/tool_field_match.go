package atsserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFieldMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "field_match",
		Description: "Recommend the best-matching job field for a resume. Scores the resume against every known field catalog and returns the top field with a High/Medium/Low confidence label, per-field match percentages, and supporting reasons.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.FieldMatchInput) (*mcp.CallToolResult, *ats.FieldRecommendation, error) {
		if input.ResumeText == "" {
			return nil, nil, errors.New("resume_text is required")
		}
		engine.IncrFieldMatchRequests()

		text := engine.CapResume(input.ResumeText)

		cacheKey := engine.CacheKey("field_match", text)
		if rec, ok := toolutil.CacheLoadJSON[*ats.FieldRecommendation](ctx, cacheKey); ok {
			return nil, rec, nil
		}

		rec := ats.RecommendField(text)

		slog.Debug("field_match: recommendation",
			slog.String("field", rec.RecommendedField),
			slog.String("confidence", rec.Confidence),
		)

		toolutil.CacheStoreJSON(ctx, cacheKey, rec.RecommendedField, rec)
		return nil, rec, nil
	})
}
