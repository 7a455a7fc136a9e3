package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"ownerscope/core"
	"ownerscope/internal/contract"
	"ownerscope/internal/owners"
)

// toolHandler carries the validated base configuration shared by all tools.
// Each invocation clones it so concurrent tool calls never race on fields.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleAnalyzeOwnership(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	input := &contract.ConfigRawInput{
		RepoPathStr: request.GetString("repo_path", cfg.RepoPath),
		Branch:      request.GetString("branch", cfg.Branch),
		Weeks:       request.GetInt("weeks", cfg.LookbackWeeks),
		TopFiles:    request.GetInt("top_files", cfg.TopFiles),
		Output:      string(cfg.Output),
		Emoji:       "no",
		Color:       "no",
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.Analyze(ctx, cfg, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (h *toolHandler) handleResolveOwner(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := h.baseCfg.Clone()
	input := &contract.ConfigRawInput{
		RepoPathStr: request.GetString("repo_path", cfg.RepoPath),
		Branch:      cfg.Branch,
		Weeks:       cfg.LookbackWeeks,
		TopFiles:    cfg.TopFiles,
		Output:      string(cfg.Output),
		Emoji:       "no",
		Color:       "no",
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rules := owners.LoadRepo(cfg.RepoPath)

	payload, err := json.Marshal(map[string]string{
		"file":  file,
		"owner": owners.Resolve(rules, file),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
