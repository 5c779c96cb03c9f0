package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// FeedbackTool handles the get_feedback MCP tool.
type FeedbackTool struct {
	data *dataset.Dataset
}

// NewFeedbackTool creates a FeedbackTool.
func NewFeedbackTool(data *dataset.Dataset) *FeedbackTool {
	return &FeedbackTool{data: data}
}

// Definition returns the MCP tool definition for get_feedback.
func (t *FeedbackTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Get the feedback (reviews) the user received, from colleagues or external reviewers.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	return mcp.NewTool("get_feedback", append(opts, dateRangeOptions("review date")...)...)
}

// Handle processes the get_feedback tool call.
func (t *FeedbackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.data == nil {
		return notAvailable(), nil
	}

	bounds, err := boundsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reviews := dataset.OwnedBy(t.data.Reviews, t.data.UserID(), dataset.ReviewProfessional)
	return jsonResult(dataset.InRange(reviews, bounds, dataset.ReviewDate))
}
