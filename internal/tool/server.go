// SPDX-License-Identifier: Apache-2.0

// Package tool exposes scoring over the Model Context Protocol.
package tool

import "github.com/modelcontextprotocol/go-sdk/mcp"

// NewServer creates an MCP server with all edeval tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "edeval", Version: version}, nil)
	mcp.AddTool(server, MetadataScoreMentions, ScoreMentions)
	mcp.AddTool(server, MetadataEvaluateReport, EvaluateReport)
	return server
}
