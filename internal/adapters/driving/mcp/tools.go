package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// CheckInput is the input schema for the check_layers tool.
type CheckInput struct {
	Root     string `json:"root" jsonschema:"absolute path of the source tree to check"`
	Language string `json:"language,omitempty" jsonschema:"scanner language (golang, java, graphfile); auto-detected when empty"`
}

// CheckOutput is the output schema for the check_layers tool.
type CheckOutput struct {
	Clean       bool              `json:"clean"`
	ModuleCount int               `json:"module_count"`
	EdgeCount   int               `json:"edge_count"`
	Violations  []ViolationOutput `json:"violations"`
	Count       int               `json:"count"`
}

// ViolationOutput represents a single layering violation.
type ViolationOutput struct {
	FromModule string `json:"from_module"`
	FromLayer  string `json:"from_layer"`
	ToModule   string `json:"to_module"`
	ToLayer    string `json:"to_layer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_layers",
		Description: "Check a source tree against the clean architecture layering convention",
	}, s.handleCheck)
}

// handleCheck handles the check_layers tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	opts := driving.CheckOptions{Language: input.Language}
	report, err := s.ports.Check.Check(ctx, input.Root, opts)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	output := CheckOutput{
		Clean:       report.Clean(),
		ModuleCount: report.ModuleCount,
		EdgeCount:   report.EdgeCount,
		Violations:  make([]ViolationOutput, len(report.Violations)),
		Count:       len(report.Violations),
	}

	for i := range report.Violations {
		v := &report.Violations[i]
		output.Violations[i] = ViolationOutput{
			FromModule: v.FromModule,
			FromLayer:  v.FromLayer.String(),
			ToModule:   v.ToModule,
			ToLayer:    v.ToLayer.String(),
		}
	}

	return nil, output, nil
}
