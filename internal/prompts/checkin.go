package prompts

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CheckinPrompt handles the truqu-goal-checkin MCP prompt.
// It instructs the AI to review progress on a single goal.
type CheckinPrompt struct{}

// NewCheckinPrompt creates a CheckinPrompt.
func NewCheckinPrompt() *CheckinPrompt {
	return &CheckinPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CheckinPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("truqu-goal-checkin",
		mcp.WithPromptDescription(
			"Check in on one goal: its status, open action points "+
				"and any feedback that relates to it.",
		),
		mcp.WithArgument("goalId",
			mcp.ArgumentDescription("ID of the goal (from list_goals)"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the truqu-goal-checkin prompt request.
func (p *CheckinPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	goalID := req.Params.Arguments["goalId"]
	if goalID == "" {
		return nil, errors.New("goalId is required")
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Check-in on goal %s", goalID),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Let's check in on my goal '%s'.\n\n"+
						"Then:\n"+
						"1. Run `get_goal_by_id` with goalId='%s' and restate the goal in one sentence\n"+
						"2. List the action points that are still open\n"+
						"3. Run `get_feedback` for the period since the goal was created and quote anything relevant\n"+
						"4. Tell me the single next step I should take",
					goalID, goalID,
				)),
			},
		},
	}, nil
}
