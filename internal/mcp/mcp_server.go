// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ownerscope/internal/contract"
)

// NewMCPServer initializes and configures the ownerscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Ownerscope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_ownership ---
	s.AddTool(mcp.NewTool("analyze_ownership",
		mcp.WithDescription("Analyze recent git history and report the most changed files per code owner."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("branch", mcp.Description("Branch whose first-parent history is walked. Defaults to 'master'.")),
		mcp.WithNumber("weeks", mcp.Description("Lookback window in whole weeks (1-52). Defaults to 12.")),
		mcp.WithNumber("top_files", mcp.Description("Files retained per owner in the report. Defaults to 30.")),
	), h.handleAnalyzeOwnership)

	// --- 2. Tool: resolve_owner ---
	s.AddTool(mcp.NewTool("resolve_owner",
		mcp.WithDescription("Resolve a single file path to its code owner using the repository's CODEOWNERS manifest."),
		mcp.WithString("file", mcp.Description("Repository-relative file path to resolve."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleResolveOwner)

	return s
}

// StartMCPServer starts the ownerscope MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
