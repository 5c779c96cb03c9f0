package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// ownGoals returns the user's goals created inside the requested range.
func ownGoals(data *dataset.Dataset, bounds dataset.Bounds) []dataset.Goal {
	owned := dataset.OwnedBy(data.Goals, data.UserID(), dataset.GoalOwner)
	return dataset.InRange(owned, bounds, dataset.GoalCreated)
}

// ─── ListGoalsTool ──────────────────────────────────────────────────────────

// GoalSummary is the compact view of a goal returned by list_goals.
type GoalSummary struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Created *string `json:"created,omitempty"`
	Due     *string `json:"due,omitempty"`
	Status  string  `json:"status"`
}

// ListGoalsTool handles the list_goals MCP tool.
type ListGoalsTool struct {
	data *dataset.Dataset
}

// NewListGoalsTool creates a ListGoalsTool.
func NewListGoalsTool(data *dataset.Dataset) *ListGoalsTool {
	return &ListGoalsTool{data: data}
}

// Definition returns the MCP tool definition for list_goals.
func (t *ListGoalsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"List the user's goals with id, title, creation date, due date and status. " +
				"Use get_goal_by_id or get_goals_detailed for the full goal.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	return mcp.NewTool("list_goals", append(opts, dateRangeOptions("creation date")...)...)
}

// Handle processes the list_goals tool call.
func (t *ListGoalsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.data == nil {
		return notAvailable(), nil
	}

	bounds, err := boundsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	goals := ownGoals(t.data, bounds)
	summaries := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		summaries = append(summaries, GoalSummary{
			ID:      g.ID,
			Title:   g.Title,
			Created: g.Created,
			Due:     g.Due,
			Status:  g.Status.Tag,
		})
	}

	return jsonResult(summaries)
}

// ─── DetailedGoalsTool ──────────────────────────────────────────────────────

// DetailedGoalsTool handles the get_goals_detailed MCP tool.
type DetailedGoalsTool struct {
	data *dataset.Dataset
}

// NewDetailedGoalsTool creates a DetailedGoalsTool.
func NewDetailedGoalsTool(data *dataset.Dataset) *DetailedGoalsTool {
	return &DetailedGoalsTool{data: data}
}

// Definition returns the MCP tool definition for get_goals_detailed.
func (t *DetailedGoalsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Get the user's goals in full: body, status, sharing, action points and items.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	return mcp.NewTool("get_goals_detailed", append(opts, dateRangeOptions("creation date")...)...)
}

// Handle processes the get_goals_detailed tool call.
func (t *DetailedGoalsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.data == nil {
		return notAvailable(), nil
	}

	bounds, err := boundsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(ownGoals(t.data, bounds))
}

// ─── GoalByIDTool ───────────────────────────────────────────────────────────

// GoalByIDTool handles the get_goal_by_id MCP tool.
type GoalByIDTool struct {
	data *dataset.Dataset
}

// NewGoalByIDTool creates a GoalByIDTool.
func NewGoalByIDTool(data *dataset.Dataset) *GoalByIDTool {
	return &GoalByIDTool{data: data}
}

// Definition returns the MCP tool definition for get_goal_by_id.
func (t *GoalByIDTool) Definition() mcp.Tool {
	return mcp.NewTool("get_goal_by_id",
		mcp.WithDescription("Get one of the user's goals in full by its ID."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("goalId",
			mcp.Required(),
			mcp.Description("ID of the goal, as returned by list_goals"),
		),
	)
}

// Handle processes the get_goal_by_id tool call.
//
// Only the user's own goals are searched. A goal owned by someone else is
// reported exactly like a goal that does not exist.
func (t *GoalByIDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.data == nil {
		return notAvailable(), nil
	}

	goalID := req.GetString("goalId", "")
	if goalID == "" {
		return mcp.NewToolResultError("'goalId' is required"), nil
	}

	for _, g := range dataset.OwnedBy(t.data.Goals, t.data.UserID(), dataset.GoalOwner) {
		if g.ID == goalID {
			return jsonResult(g)
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Goal with ID %q not found.", goalID)), nil
}
