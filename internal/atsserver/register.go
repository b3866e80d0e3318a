// Package atsserver registers the go_ats MCP tools: ats_score, field_match,
// ats_fields, score_history.
package atsserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume scoring tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerATSScore(server)
	registerFieldMatch(server)
	registerFields(server)
	registerScoreHistory(server)
}
