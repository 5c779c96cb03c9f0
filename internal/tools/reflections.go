package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// ReflectionsTool handles the get_reflections MCP tool.
type ReflectionsTool struct {
	data *dataset.Dataset
}

// NewReflectionsTool creates a ReflectionsTool.
func NewReflectionsTool(data *dataset.Dataset) *ReflectionsTool {
	return &ReflectionsTool{data: data}
}

// Definition returns the MCP tool definition for get_reflections.
func (t *ReflectionsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Get the user's reflections: the period covered, their inputs and who assessed them.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	return mcp.NewTool("get_reflections", append(opts, dateRangeOptions("creation date")...)...)
}

// Handle processes the get_reflections tool call.
func (t *ReflectionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.data == nil {
		return notAvailable(), nil
	}

	bounds, err := boundsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reflections := dataset.OwnedBy(t.data.Reflections, t.data.UserID(), dataset.ReflectionUser)
	return jsonResult(dataset.InRange(reflections, bounds, dataset.ReflectionCreated))
}
