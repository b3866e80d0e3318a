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

func registerATSScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_score",
		Description: "Score a resume's ATS compatibility for a target job field (software_engineering, data_analyst, consultant). Returns an overall 0-100 score, weighted sub-scores for skills/format/keywords/content, found and missing skills, format flags, improvement recommendations, and a best-field recommendation.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ATSScoreInput) (*mcp.CallToolResult, *ats.Report, error) {
		if input.ResumeText == "" {
			return nil, nil, errors.New("resume_text is required")
		}
		engine.IncrScoreRequests()

		field := toolutil.NormField(input.Field)
		text := engine.CapResume(input.ResumeText)

		cacheKey := engine.CacheKey("ats_score", field, text)
		if report, ok := toolutil.CacheLoadJSON[*ats.Report](ctx, cacheKey); ok {
			return nil, report, nil
		}

		report := ats.BuildReport(text, field)

		// History is best-effort: a broken local DB must not fail scoring.
		if _, err := ats.RecordScore(ctx, report); err != nil {
			engine.IncrHistoryWriteErrors()
			slog.Warn("ats_score: history write failed", slog.Any("error", err))
		} else {
			engine.IncrHistoryWrites()
		}

		slog.Debug("ats_score: scored resume",
			slog.String("field", field),
			slog.Int("overall", report.OverallScore),
			slog.Int("found_skills", len(report.FoundSkills)),
		)

		toolutil.CacheStoreJSON(ctx, cacheKey, field, report)
		return nil, report, nil
	})
}
