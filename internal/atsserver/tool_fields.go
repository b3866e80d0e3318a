package atsserver

import (
	"context"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FieldsInput is the (empty) input for ats_fields.
type FieldsInput struct{}

// FieldInfo describes one catalog field.
type FieldInfo struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Keywords         []string `json:"keywords"`
	IndustryKeywords []string `json:"industry_keywords,omitempty"`
}

// FieldsOutput is the structured output for ats_fields.
type FieldsOutput struct {
	Fields []FieldInfo `json:"fields"`
}

func registerFields(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_fields",
		Description: "List the known job field catalogs: field identifiers, display names, required/preferred skills, keyword phrases, and industry keywords.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ FieldsInput) (*mcp.CallToolResult, *FieldsOutput, error) {
		engine.IncrFieldsRequests()

		ids := ats.FieldIDs()
		out := &FieldsOutput{Fields: make([]FieldInfo, 0, len(ids))}
		for _, id := range ids {
			p := ats.ProfileFor(id)
			out.Fields = append(out.Fields, FieldInfo{
				ID:               id,
				Name:             ats.DisplayName(id),
				RequiredSkills:   p.Required,
				PreferredSkills:  p.Preferred,
				Keywords:         p.Keywords,
				IndustryKeywords: p.Industry,
			})
		}
		return nil, out, nil
	})
}
